package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const shutdownDrainTimeout = 10 * time.Second

func newHTTPServer(gatewayConfig serverConfig, logger zerolog.Logger) *http.Server {
	rateLimiterWindow := newWindowLimiter(gatewayConfig.RateLimitPerMinute)

	httpServerMux := http.NewServeMux()
	httpServerMux.HandleFunc("/healthz", handleHealth)
	httpServerMux.HandleFunc("/v1/capitalize", func(httpResponseWriter http.ResponseWriter, httpRequest *http.Request) {
		handleCapitalize(httpResponseWriter, httpRequest, gatewayConfig, rateLimiterWindow, logger)
	})
	httpServerMux.HandleFunc("/v1/trim", func(httpResponseWriter http.ResponseWriter, httpRequest *http.Request) {
		handleTrim(httpResponseWriter, httpRequest, gatewayConfig, rateLimiterWindow, logger)
	})

	return &http.Server{
		Addr:              gatewayConfig.ListenAddress,
		Handler:           httpServerMux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// runHTTPServer serves until ctx is cancelled, then drains in-flight requests.
func runHTTPServer(ctx context.Context, httpServer *http.Server, logger zerolog.Logger) error {
	serveErrors := make(chan error, 1)
	go func() {
		serveErrors <- httpServer.ListenAndServe()
	}()

	select {
	case serveError := <-serveErrors:
		if serveError != nil && !errors.Is(serveError, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", serveError)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownContext, cancelShutdown := context.WithTimeout(context.Background(), shutdownDrainTimeout)
	defer cancelShutdown()
	if shutdownError := httpServer.Shutdown(shutdownContext); shutdownError != nil {
		return fmt.Errorf("shutdown: %w", shutdownError)
	}
	return nil
}

// tiny indirection to ease testing (can be stubbed)
var timeNow = func() time.Time { return time.Now() }
