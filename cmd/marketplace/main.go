package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"marketplace-client/internal/api"
	"marketplace-client/internal/app"
	"marketplace-client/internal/config"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/metrics"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to open device storage", zap.Error(err))
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, _ = logger.EnsureRequestID(ctx)

	if err := run(ctx, a, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", errorText(err))
		a.Close()
		logger.Sync()
		os.Exit(1)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	logger.L().Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L().Error("metrics server stopped", zap.Error(err))
	}
}

// errorText is what the user sees: the backend's message when there is one.
func errorText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "session expired, please log in again"
	}
	return api.Message(err)
}
