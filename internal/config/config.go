package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config describes runtime configuration for telegram-support-bot.
type Config struct {
	// ServiceName is a human-friendly service name for logs.
	ServiceName string `env:"SUPPORT_BOT_SERVICE_NAME" envDefault:"telegram-support-bot"`
	// Token is the Telegram bot token.
	Token string `env:"SUPPORT_BOT_TOKEN,required"`
	// SupportChatID is the staff group that receives forwarded requests.
	SupportChatID int64 `env:"SUPPORT_BOT_SUPPORT_CHAT_ID,required"`
	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `env:"SUPPORT_BOT_LOG_LEVEL" envDefault:"info"`
	// HTTPHost is the HTTP listen host for health checks and webhooks.
	HTTPHost string `env:"SUPPORT_BOT_HTTP_HOST" envDefault:"0.0.0.0"`
	// HTTPPort is the HTTP listen port.
	HTTPPort int `env:"SUPPORT_BOT_HTTP_PORT" envDefault:"8080"`
	// RedisAddr is the address of the preference store.
	RedisAddr string `env:"SUPPORT_BOT_REDIS_ADDR" envDefault:"localhost:6379"`
	// RedisPassword is the optional Redis password.
	RedisPassword string `env:"SUPPORT_BOT_REDIS_PASSWORD"`
	// RedisDB is the Redis database index.
	RedisDB int `env:"SUPPORT_BOT_REDIS_DB" envDefault:"0"`
	// WebhookURL enables webhook mode when set with WebhookSecret.
	WebhookURL string `env:"SUPPORT_BOT_WEBHOOK_URL"`
	// WebhookSecret is the Telegram webhook secret token.
	WebhookSecret string `env:"SUPPORT_BOT_WEBHOOK_SECRET"`
	// OpenAIAPIKey enables transcription of voice support requests.
	OpenAIAPIKey string `env:"SUPPORT_BOT_OPENAI_API_KEY"`
	// STTModel is the OpenAI model for transcription.
	STTModel string `env:"SUPPORT_BOT_STT_MODEL" envDefault:"gpt-4o-mini-transcribe"`
	// STTTimeout is the OpenAI transcription timeout.
	STTTimeout time.Duration `env:"SUPPORT_BOT_STT_TIMEOUT" envDefault:"30s"`
	// ShutdownTimeout is the graceful shutdown timeout.
	ShutdownTimeout time.Duration `env:"SUPPORT_BOT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if cfg.SupportChatID == 0 {
		return Config{}, fmt.Errorf("support chat id is required")
	}
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return Config{}, fmt.Errorf("redis addr is required")
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("http port must be between 1 and 65535")
	}
	if (cfg.WebhookURL == "") != (cfg.WebhookSecret == "") {
		return Config{}, fmt.Errorf("webhook url and secret must be set together")
	}
	if cfg.STTTimeout <= 0 {
		return Config{}, fmt.Errorf("stt timeout must be positive")
	}

	return cfg, nil
}

// HTTPAddr returns a listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(strings.TrimSpace(c.HTTPHost), fmt.Sprintf("%d", c.HTTPPort))
}

// WebhookEnabled reports whether webhook mode is configured.
func (c Config) WebhookEnabled() bool {
	return c.WebhookURL != "" && c.WebhookSecret != ""
}
