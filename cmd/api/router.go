package main

import (
	"context"
	"net/http"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/seed"
	"bookcatalog/internal/user"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// newRouter builds the stores from data and returns the fully wrapped HTTP
// handler. ctx bounds background work started by middleware.
func newRouter(ctx context.Context, cfg config.Config, data seed.Data, log zerolog.Logger) (http.Handler, error) {
	bookRepository, err := book.NewMemoryRepo(data.Books)
	if err != nil {
		return nil, err
	}
	userRepository, err := user.NewMemoryRepo(data.Users)
	if err != nil {
		return nil, err
	}

	bookHandler := book.NewHTTPHandler(book.NewService(bookRepository, cfg.AsyncDelay, log), log)
	userHandler := user.NewHTTPHandler(user.NewService(userRepository, log), log)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	bookHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	middlewares := []httpx.Middleware{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
	}
	if cfg.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
		middlewares = append(middlewares, limiter.Middleware)
	}
	middlewares = append(middlewares,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.MetricsMiddleware,
	)

	return httpx.Chain(router, middlewares...), nil
}
