package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MarkoPoloResearchLab/textkit"
	"github.com/rs/zerolog"
)

type capitalizeRequest struct {
	Values []string `json:"values"`
}

type trimRequest struct {
	Values []string         `json:"values"`
	Which  textkit.TrimSide `json:"which"`
}

type valuesResponse struct {
	Values []string `json:"values"`
}

func handleCapitalize(httpResponseWriter http.ResponseWriter, httpRequest *http.Request, gatewayConfig serverConfig, rateLimiter *windowLimiter, logger zerolog.Logger) {
	if !admitRequest(httpResponseWriter, httpRequest, gatewayConfig, rateLimiter) {
		return
	}

	var request capitalizeRequest
	if !decodeRequestBody(httpResponseWriter, httpRequest, gatewayConfig, &request) {
		return
	}
	if len(request.Values) > gatewayConfig.MaxBatchValues {
		httpErrorJSON(httpResponseWriter, http.StatusRequestEntityTooLarge, "too_many_values")
		return
	}

	capitalized := textkit.Capitalize(request.Values)
	logger.Debug().Str("operation", "capitalize").Int("values", len(capitalized)).Msg("request served")
	if writeError := writeJSON(httpResponseWriter, http.StatusOK, valuesResponse{Values: capitalized}); writeError != nil {
		logger.Warn().Err(writeError).Str("operation", "capitalize").Msg("write response")
	}
}

func handleTrim(httpResponseWriter http.ResponseWriter, httpRequest *http.Request, gatewayConfig serverConfig, rateLimiter *windowLimiter, logger zerolog.Logger) {
	if !admitRequest(httpResponseWriter, httpRequest, gatewayConfig, rateLimiter) {
		return
	}

	var request trimRequest
	if !decodeRequestBody(httpResponseWriter, httpRequest, gatewayConfig, &request) {
		return
	}
	if len(request.Values) > gatewayConfig.MaxBatchValues {
		httpErrorJSON(httpResponseWriter, http.StatusRequestEntityTooLarge, "too_many_values")
		return
	}

	trimmed, trimError := textkit.Trim(request.Values, request.Which)
	if trimError != nil {
		httpErrorJSON(httpResponseWriter, http.StatusBadRequest, "invalid_argument")
		return
	}
	logger.Debug().Str("operation", "trim").Stringer("which", request.Which).Int("values", len(trimmed)).Msg("request served")
	if writeError := writeJSON(httpResponseWriter, http.StatusOK, valuesResponse{Values: trimmed}); writeError != nil {
		logger.Warn().Err(writeError).Str("operation", "trim").Msg("write response")
	}
}

func handleHealth(httpResponseWriter http.ResponseWriter, _ *http.Request) {
	httpResponseWriter.Header().Set(headerContentType, contentTypeJSON)
	httpResponseWriter.WriteHeader(http.StatusOK)
	_, _ = httpResponseWriter.Write([]byte("{\"status\":\"ok\"}"))
}

// admitRequest runs the origin, method, rate and bearer checks shared by the
// /v1 endpoints. It writes the response itself when the request is refused.
func admitRequest(httpResponseWriter http.ResponseWriter, httpRequest *http.Request, gatewayConfig serverConfig, rateLimiter *windowLimiter) bool {
	if !checkOrigin(httpResponseWriter, httpRequest, gatewayConfig.AllowedOrigins) {
		return false
	}
	if httpRequest.Method == http.MethodOptions {
		httpResponseWriter.WriteHeader(http.StatusNoContent)
		return false
	}
	if httpRequest.Method != http.MethodPost {
		httpErrorJSON(httpResponseWriter, http.StatusMethodNotAllowed, "method_not_allowed")
		return false
	}

	if !rateLimiter.allow(rateKey(httpRequest.RemoteAddr, httpRequest.Header.Get("Origin"))) {
		httpErrorJSON(httpResponseWriter, http.StatusTooManyRequests, "rate_limited")
		return false
	}

	if !gatewayConfig.requireAuth() {
		return true
	}
	bearerAccessToken := parseBearer(httpRequest.Header.Get(headerAuthorization))
	if bearerAccessToken == "" {
		httpErrorJSON(httpResponseWriter, http.StatusUnauthorized, "missing_bearer")
		return false
	}
	if _, rejectionCode := verifyAccessToken(bearerAccessToken, gatewayConfig.JwtHmacKey, timeNow()); rejectionCode != "" {
		httpErrorJSON(httpResponseWriter, http.StatusUnauthorized, rejectionCode)
		return false
	}
	return true
}

func decodeRequestBody(httpResponseWriter http.ResponseWriter, httpRequest *http.Request, gatewayConfig serverConfig, destination interface{}) bool {
	defer httpRequest.Body.Close()
	requestBodyBytes, readBodyError := io.ReadAll(http.MaxBytesReader(httpResponseWriter, httpRequest.Body, gatewayConfig.MaxRequestBytes))
	if readBodyError != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(readBodyError, &maxBytesError) {
			httpErrorJSON(httpResponseWriter, http.StatusRequestEntityTooLarge, "bad_request_body")
			return false
		}
		httpErrorJSON(httpResponseWriter, http.StatusBadRequest, "bad_request_body")
		return false
	}

	if unmarshalError := json.Unmarshal(requestBodyBytes, destination); unmarshalError != nil {
		if errors.Is(unmarshalError, textkit.ErrInvalidArgument) {
			httpErrorJSON(httpResponseWriter, http.StatusBadRequest, "invalid_argument")
			return false
		}
		httpErrorJSON(httpResponseWriter, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}
