// cmd/gateway/main.go
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"centris-gateway/internal/common/config"
	"centris-gateway/internal/common/logger"
	"centris-gateway/internal/common/observability"
	"centris-gateway/internal/extractor"
	"centris-gateway/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting Centris gateway...",
		zap.String("version", cfg.App.Version),
		zap.String("addr", cfg.Server.Addr()),
	)

	jaegerEndpoint := ""
	if cfg.Tracing.Enabled {
		jaegerEndpoint = cfg.Tracing.JaegerEndpoint
	}
	obs := observability.New(cfg.App.Name, jaegerEndpoint)
	defer obs.Shutdown()

	// --- Init Extraction Backend Client ---
	client := extractor.NewClient(
		cfg.Extractor.BaseURL,
		cfg.Extractor.GetTimeout(),
		cfg.Extractor.GetProbeTimeout(),
	)
	svc := extractor.NewService(client, log)

	if client.Configured() {
		zapLog.Info("Extraction backend configured",
			zap.String("base_url", cfg.Extractor.BaseURL))
	} else {
		zapLog.Warn("No extraction backend configured, all uploads will receive demo data")
	}

	// --- HTTP Server ---
	srv := server.New(cfg, log, svc, obs)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Gateway stopped")
}
