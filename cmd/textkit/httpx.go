package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
)

func parseBearer(authorizationHeaderValue string) string {
	if !strings.HasPrefix(authorizationHeaderValue, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorizationHeaderValue, "Bearer "))
}

func httpErrorJSON(httpResponseWriter http.ResponseWriter, statusCode int, errorCode string) {
	httpResponseWriter.Header().Set(headerContentType, contentTypeJSON)
	httpResponseWriter.WriteHeader(statusCode)
	_, _ = httpResponseWriter.Write([]byte(fmt.Sprintf("{\"error\":\"%s\"}", errorCode)))
}

func writeJSON(httpResponseWriter http.ResponseWriter, statusCode int, payload interface{}) error {
	httpResponseWriter.Header().Set(headerContentType, contentTypeJSON)
	httpResponseWriter.WriteHeader(statusCode)
	return json.NewEncoder(httpResponseWriter).Encode(payload)
}

// checkOrigin enforces the allowlist when one is configured. An empty
// allowlist accepts every caller and sets no CORS headers.
func checkOrigin(httpResponseWriter http.ResponseWriter, httpRequest *http.Request, allowedOrigins map[string]struct{}) bool {
	if len(allowedOrigins) == 0 {
		return true
	}
	originHeader := httpRequest.Header.Get("Origin")
	if _, isAllowed := allowedOrigins[originHeader]; !isAllowed {
		httpErrorJSON(httpResponseWriter, http.StatusForbidden, "origin_not_allowed")
		return false
	}
	httpResponseWriter.Header().Set(headerAccessControlAllowOrigin, originHeader)
	httpResponseWriter.Header().Set(headerVary, "Origin")
	httpResponseWriter.Header().Set(headerAccessControlAllowHeaders, headerAllowHeadersValue)
	httpResponseWriter.Header().Set(headerAccessControlAllowMethods, headerAllowMethodsValue)
	return true
}

func rateKey(remoteAddress string, originHeader string) string {
	hostPart, _, splitError := net.SplitHostPort(remoteAddress)
	if splitError != nil {
		hostPart = remoteAddress
	}
	return originHeader + "|" + hostPart
}
