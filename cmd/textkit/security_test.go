package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerifyAccessToken(t *testing.T) {
	issuedAt := time.Now()
	signedToken, issueError := issueAccessToken(testSigningKey, "reporting", 5*time.Minute, issuedAt)
	if issueError != nil {
		t.Fatalf("issueAccessToken: %v", issueError)
	}

	claims, rejectionCode := verifyAccessToken(signedToken, testSigningKey, issuedAt.Add(time.Minute))
	if rejectionCode != "" {
		t.Fatalf("expected token to verify, got %s", rejectionCode)
	}
	if claims.Subject != "reporting" || claims.ID == "" {
		t.Fatalf("unexpected claims: subject %q, id %q", claims.Subject, claims.ID)
	}
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	issuedAt := time.Now().Add(-10 * time.Minute)
	signedToken, issueError := issueAccessToken(testSigningKey, "", time.Minute, issuedAt)
	if issueError != nil {
		t.Fatalf("issueAccessToken: %v", issueError)
	}
	if _, rejectionCode := verifyAccessToken(signedToken, testSigningKey, time.Now()); rejectionCode != "bad_claims" {
		t.Fatalf("expected bad_claims for expired token, got %q", rejectionCode)
	}
}

func TestVerifyAccessTokenRejectsNotYetValid(t *testing.T) {
	issuedAt := time.Now().Add(10 * time.Minute)
	signedToken, issueError := issueAccessToken(testSigningKey, "", time.Hour, issuedAt)
	if issueError != nil {
		t.Fatalf("issueAccessToken: %v", issueError)
	}
	if _, rejectionCode := verifyAccessToken(signedToken, testSigningKey, time.Now()); rejectionCode != "bad_claims" {
		t.Fatalf("expected bad_claims before nbf, got %q", rejectionCode)
	}
}

func TestVerifyAccessTokenRejectsWrongKey(t *testing.T) {
	signedToken, issueError := issueAccessToken(testSigningKey, "", time.Minute, time.Now())
	if issueError != nil {
		t.Fatalf("issueAccessToken: %v", issueError)
	}
	if _, rejectionCode := verifyAccessToken(signedToken, []byte("another-key-another-key"), time.Now()); rejectionCode != "invalid_token" {
		t.Fatalf("expected invalid_token, got %q", rejectionCode)
	}
}

func TestVerifyAccessTokenRejectsForeignAudience(t *testing.T) {
	currentTime := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{"someone-else"},
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(5 * time.Minute)),
			ID:        "foreign",
		},
	}
	signedToken, signError := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	if signError != nil {
		t.Fatalf("token.SignedString: %v", signError)
	}
	if _, rejectionCode := verifyAccessToken(signedToken, testSigningKey, currentTime); rejectionCode != "bad_claims" {
		t.Fatalf("expected bad_claims, got %q", rejectionCode)
	}
}

func TestIssueAccessTokenRequiresKeyAndLifetime(t *testing.T) {
	if _, issueError := issueAccessToken(nil, "", time.Minute, time.Now()); issueError == nil {
		t.Fatalf("expected error without key")
	}
	if _, issueError := issueAccessToken(testSigningKey, "", 0, time.Now()); issueError == nil {
		t.Fatalf("expected error for zero lifetime")
	}
}

func TestParseBearer(t *testing.T) {
	if token := parseBearer("Bearer  abc "); token != "abc" {
		t.Fatalf("unexpected token %q", token)
	}
	if token := parseBearer("Basic abc"); token != "" {
		t.Fatalf("expected empty token for non-bearer scheme, got %q", token)
	}
}
