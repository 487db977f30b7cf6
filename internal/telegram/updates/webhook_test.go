package updates

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebhook() *Webhook {
	return NewWebhook(nil, "https://bot.example.com/webhook", "s3cret", slog.New(slog.DiscardHandler))
}

func TestWebhookHandlerRejectsWrongMethod(t *testing.T) {
	w := newTestWebhook()
	rec := httptest.NewRecorder()

	w.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWebhookHandlerRejectsBadSecret(t *testing.T) {
	w := newTestWebhook()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}"))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")

	w.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookHandlerRejectsMalformedBody(t *testing.T) {
	w := newTestWebhook()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("not json"))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")

	w.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandlerQueuesUpdate(t *testing.T) {
	w := newTestWebhook()
	rec := httptest.NewRecorder()
	body := `{"update_id":7,"message":{"message_id":1,"chat":{"id":42},"text":"hello"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")

	w.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	select {
	case update := <-w.Updates():
		require.NotNil(t, update.Message)
		assert.Equal(t, int64(42), update.Message.Chat.ID)
		assert.Equal(t, "hello", update.Message.Text)
	default:
		t.Fatal("expected a queued update")
	}
}
