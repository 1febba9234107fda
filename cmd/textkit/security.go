package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	headerAuthorization             = "Authorization"
	headerContentType               = "Content-Type"
	headerAccessControlAllowOrigin  = "Access-Control-Allow-Origin"
	headerAccessControlAllowHeaders = "Access-Control-Allow-Headers"
	headerAccessControlAllowMethods = "Access-Control-Allow-Methods"
	headerVary                      = "Vary"

	headerAllowHeadersValue = "Authorization, Content-Type"
	headerAllowMethodsValue = "GET, POST, OPTIONS"
	contentTypeJSON         = "application/json"

	audienceApi = "textkit"
)

type accessClaims struct {
	jwt.RegisteredClaims
}

func issueAccessToken(signingKey []byte, subject string, lifetime time.Duration, issuedAt time.Time) (string, error) {
	if len(signingKey) == 0 {
		return "", fmt.Errorf("missing %s", envKeyJwtHmacKey)
	}
	if lifetime <= 0 {
		return "", fmt.Errorf("bad token lifetime %s", lifetime)
	}

	accessTokenClaims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audienceApi},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt.Add(-1 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
			ID:        uuid.NewString(),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims)
	signedToken, signError := jwtToken.SignedString(signingKey)
	if signError != nil {
		return "", fmt.Errorf("sign token: %w", signError)
	}
	return signedToken, nil
}

// verifyAccessToken returns an error code suitable for httpErrorJSON, or ""
// when the token is acceptable. Signature failures map to invalid_token;
// audience, expiry and not-before are checked here against currentTime and
// map to bad_claims.
func verifyAccessToken(bearerAccessToken string, signingKey []byte, currentTime time.Time) (accessClaims, string) {
	var parsedClaims accessClaims
	parsedJWT, parseTokenError := jwt.ParseWithClaims(bearerAccessToken, &parsedClaims, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected_jwt_alg")
		}
		return signingKey, nil
	}, jwt.WithoutClaimsValidation())
	if parseTokenError != nil || !parsedJWT.Valid {
		return accessClaims{}, "invalid_token"
	}

	if !audienceHas(parsedClaims.Audience, audienceApi) ||
		parsedClaims.ExpiresAt == nil || currentTime.After(parsedClaims.ExpiresAt.Time) ||
		(parsedClaims.NotBefore != nil && currentTime.Before(parsedClaims.NotBefore.Time)) {
		return accessClaims{}, "bad_claims"
	}
	return parsedClaims, ""
}

func audienceHas(audience jwt.ClaimStrings, expected string) bool {
	for _, value := range audience {
		if value == expected {
			return true
		}
	}
	return false
}
