// Package store persists per-chat language preferences.
package store

import (
	"context"
	"fmt"

	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
)

// ChatID is a Telegram chat identifier used as the preference key.
// Keeping it typed avoids ad hoc string conversions at call sites.
type ChatID int64

// Key returns the storage key for the chat.
func (id ChatID) Key() string {
	return fmt.Sprintf("lang:%d", int64(id))
}

// Store reads and writes language preferences keyed by chat.
// Reads and writes for different chats are independent; concurrent
// writes for the same chat are last-write-wins.
type Store interface {
	// Language returns the stored preference, or the zero Tag when the
	// chat has no preference or the stored value is not a supported tag.
	Language(ctx context.Context, chat ChatID) (i18n.Tag, error)
	// SetLanguage overwrites the preference for the chat.
	SetLanguage(ctx context.Context, chat ChatID, tag i18n.Tag) error
}
