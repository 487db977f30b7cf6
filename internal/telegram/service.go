package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mymmrac/telego"

	"github.com/codex-k8s/telegram-support-bot/internal/config"
	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
	"github.com/codex-k8s/telegram-support-bot/internal/store"
	"github.com/codex-k8s/telegram-support-bot/internal/telegram/handlers"
	"github.com/codex-k8s/telegram-support-bot/internal/telegram/updates"
)

// Service manages the Telegram bot lifecycle and update processing.
type Service struct {
	bot     *telego.Bot
	source  updates.Source
	handler *handlers.Handler
	log     *slog.Logger
}

// New creates the Telegram service: bot client, update source, and the
// message handler with its collaborators wired in.
func New(ctx context.Context, cfg config.Config, catalog *i18n.Catalog, prefs store.Store, log *slog.Logger) (*Service, error) {
	bot, err := telego.NewBot(cfg.Token, telego.WithLogger(telegoLogger{log: log}))
	if err != nil {
		return nil, err
	}

	self, err := bot.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bot identity: %w", err)
	}

	var source updates.Source
	if cfg.WebhookEnabled() {
		source = updates.NewWebhook(bot, cfg.WebhookURL, cfg.WebhookSecret, log)
	} else {
		source = updates.NewLongPolling(bot, log)
	}

	var transcriber handlers.Transcriber
	if cfg.OpenAIAPIKey != "" {
		transcriber = handlers.NewOpenAITranscriber(cfg.OpenAIAPIKey, cfg.STTModel, cfg.STTTimeout, log)
	}

	handler := handlers.New(&botTransport{bot: bot}, prefs, catalog, *self, cfg.SupportChatID, transcriber, log)

	return &Service{
		bot:     bot,
		source:  source,
		handler: handler,
		log:     log,
	}, nil
}

// Start begins receiving Telegram updates.
func (s *Service) Start(ctx context.Context) error {
	if err := s.source.Start(ctx); err != nil {
		return err
	}
	go s.handler.Run(ctx, s.source.Updates())
	return nil
}

// Stop shuts down Telegram update processing.
func (s *Service) Stop(ctx context.Context) error {
	return s.source.Stop(ctx)
}

// WebhookHandler returns the webhook HTTP handler if enabled.
func (s *Service) WebhookHandler() http.Handler {
	return s.source.Handler()
}
