package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SUPPORT_BOT_TOKEN", "123:abc")
	t.Setenv("SUPPORT_BOT_SUPPORT_CHAT_ID", "-1001000")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "telegram-support-bot", cfg.ServiceName)
	assert.Equal(t, int64(-1001000), cfg.SupportChatID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.WebhookEnabled())
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("SUPPORT_BOT_SUPPORT_CHAT_ID", "-1001000")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadWebhookPairRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SUPPORT_BOT_WEBHOOK_URL", "https://bot.example.com/webhook")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook url and secret")
}

func TestLoadWebhookEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("SUPPORT_BOT_WEBHOOK_URL", "https://bot.example.com/webhook")
	t.Setenv("SUPPORT_BOT_WEBHOOK_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.WebhookEnabled())
}

func TestLoadInvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SUPPORT_BOT_HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}

func TestHTTPAddr(t *testing.T) {
	setRequired(t)
	t.Setenv("SUPPORT_BOT_HTTP_HOST", "127.0.0.1")
	t.Setenv("SUPPORT_BOT_HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr())
}
