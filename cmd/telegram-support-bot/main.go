package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codex-k8s/telegram-support-bot/internal/config"
	httpapi "github.com/codex-k8s/telegram-support-bot/internal/http"
	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
	"github.com/codex-k8s/telegram-support-bot/internal/log"
	"github.com/codex-k8s/telegram-support-bot/internal/store"
	"github.com/codex-k8s/telegram-support-bot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel, cfg.ServiceName)

	catalog, err := i18n.Load()
	if err != nil {
		logger.Error("failed to load i18n catalogs", "error", err)
		os.Exit(1)
	}

	prefs, err := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("failed to connect to preference store", "error", err)
		os.Exit(1)
	}
	defer prefs.Close()

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service, err := telegram.New(baseCtx, cfg, catalog, prefs, logger)
	if err != nil {
		logger.Error("failed to init telegram service", "error", err)
		os.Exit(1)
	}

	server := httpapi.New(cfg.HTTPAddr(), logger)
	if webhook := service.WebhookHandler(); webhook != nil {
		server.Handle("/webhook", webhook)
	}

	if err := service.Start(baseCtx); err != nil {
		logger.Error("failed to start telegram updates", "error", err)
		os.Exit(1)
	}
	server.SetReady(true)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown requested", "signal", sig.String())
	case err := <-errCh:
		logger.Error("http server stopped", "error", err)
	}

	cancel()
	server.SetReady(false)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
	_ = service.Stop(shutdownCtx)
}
