// Package handlers routes inbound Telegram messages to the bot's
// command handlers and the support relay.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
	"github.com/codex-k8s/telegram-support-bot/internal/store"
)

// Transport is the capability the handlers need from the Telegram side.
type Transport interface {
	// SendMessage sends text to a chat, optionally with a reply keyboard.
	SendMessage(ctx context.Context, chatID int64, text string, markup telego.ReplyMarkup) error
	// ReplyMessage sends text to a chat as a reply to an existing message.
	ReplyMessage(ctx context.Context, chatID int64, replyToMessageID int, text string) error
	// ForwardMessage forwards a message preserving its original-sender
	// provenance and returns the id of the forwarded copy.
	ForwardMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) (int, error)
	// DownloadFile fetches file content by Telegram file id.
	DownloadFile(ctx context.Context, fileID string) (data []byte, filePath string, err error)
}

// languageSelection matches settings keyboard echoes like "en_US - English (US)".
var languageSelection = regexp.MustCompile(`^([a-z]{2}_[A-Z]{2}) - `)

// locale is the per-update localization context, resolved fresh for
// every message so a preference change applies immediately.
type locale struct {
	tag i18n.Tag
	t   i18n.Translator
}

type route struct {
	match  func(msg *telego.Message) bool
	handle func(ctx context.Context, msg *telego.Message, loc locale) error
}

// Handler dispatches each inbound message to exactly one handler.
type Handler struct {
	transport     Transport
	prefs         store.Store
	catalog       *i18n.Catalog
	self          telego.User
	supportChatID int64
	transcriber   Transcriber
	log           *slog.Logger
	routes        []route
}

// New creates a message handler. transcriber may be nil to disable
// voice transcription.
func New(transport Transport, prefs store.Store, catalog *i18n.Catalog, self telego.User, supportChatID int64, transcriber Transcriber, log *slog.Logger) *Handler {
	h := &Handler{
		transport:     transport,
		prefs:         prefs,
		catalog:       catalog,
		self:          self,
		supportChatID: supportChatID,
		transcriber:   transcriber,
		log:           log,
	}
	// Order is significant: the relay route accepts any plain text and
	// must stay last.
	h.routes = []route{
		{match: matchCommand("start", "help"), handle: h.welcome},
		{match: matchCommand("support"), handle: h.supportPrompt},
		{match: matchCommand("settings"), handle: h.settingsMenu},
		{match: matchLanguageSelection, handle: h.selectLanguage},
		{match: matchAnyCommand, handle: h.unknownCommand},
		{match: matchRelayable, handle: h.relay},
	}
	return h
}

// Run processes updates until context cancellation.
func (h *Handler) Run(ctx context.Context, updates <-chan telego.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches a single update to the first matching route.
func (h *Handler) HandleUpdate(ctx context.Context, update telego.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	loc := h.localize(ctx, msg.Chat.ID)
	for _, r := range h.routes {
		if !r.match(msg) {
			continue
		}
		if err := r.handle(ctx, msg, loc); err != nil {
			h.log.Error("Handler failed", "chat_id", msg.Chat.ID, "error", err)
		}
		return
	}
}

// localize resolves the chat's stored preference. A store failure falls
// back to the base language instead of failing the interaction.
func (h *Handler) localize(ctx context.Context, chatID int64) locale {
	tag, err := h.prefs.Language(ctx, store.ChatID(chatID))
	if err != nil {
		h.log.Warn("Preference lookup failed, using base language", "chat_id", chatID, "error", err)
		return locale{t: i18n.Identity}
	}
	return locale{tag: tag, t: h.catalog.For(tag)}
}

func (h *Handler) welcome(ctx context.Context, msg *telego.Message, loc locale) error {
	text := loc.t(i18n.MsgHello) +
		fmt.Sprintf(loc.t(i18n.MsgIntro), h.self.FirstName) +
		loc.t(i18n.MsgWhatToDo) +
		loc.t(i18n.MsgSupportItem) +
		loc.t(i18n.MsgSettingsItem)

	keyboard := tu.Keyboard(
		tu.KeyboardRow(tu.KeyboardButton("/support")),
		tu.KeyboardRow(tu.KeyboardButton("/settings")),
	).WithResizeKeyboard().WithOneTimeKeyboard()

	return h.transport.SendMessage(ctx, msg.Chat.ID, text, keyboard)
}

func (h *Handler) supportPrompt(ctx context.Context, msg *telego.Message, loc locale) error {
	return h.transport.SendMessage(ctx, msg.Chat.ID, loc.t(i18n.MsgSupportPrompt), nil)
}

func (h *Handler) settingsMenu(ctx context.Context, msg *telego.Message, loc locale) error {
	var text strings.Builder
	text.WriteString(loc.t(i18n.MsgChooseLanguage))

	rows := make([][]telego.KeyboardButton, 0, len(i18n.Supported()))
	for _, tag := range i18n.Supported() {
		text.WriteString(tag.MenuLabel())
		text.WriteString("\n")
		rows = append(rows, tu.KeyboardRow(tu.KeyboardButton(tag.MenuLabel())))
	}
	keyboard := tu.Keyboard(rows...).WithResizeKeyboard().WithOneTimeKeyboard()

	return h.transport.SendMessage(ctx, msg.Chat.ID, text.String(), keyboard)
}

// selectLanguage validates a settings keyboard selection. Replies are
// localized with the pre-change preference on purpose.
func (h *Handler) selectLanguage(ctx context.Context, msg *telego.Message, loc locale) error {
	tag := i18n.Tag(languageSelection.FindStringSubmatch(msg.Text)[1])
	if !tag.Valid() {
		return h.transport.SendMessage(ctx, msg.Chat.ID, loc.t(i18n.MsgUnknownLanguage), nil)
	}
	if err := h.prefs.SetLanguage(ctx, store.ChatID(msg.Chat.ID), tag); err != nil {
		h.log.Error("Failed to store language preference", "chat_id", msg.Chat.ID, "error", err)
		return h.transport.SendMessage(ctx, msg.Chat.ID, loc.t(i18n.MsgStoreFailure), nil)
	}
	confirmation := fmt.Sprintf(loc.t(i18n.MsgLanguageUpdated), tag.DisplayName())
	return h.transport.SendMessage(ctx, msg.Chat.ID, confirmation, nil)
}

func (h *Handler) unknownCommand(ctx context.Context, msg *telego.Message, loc locale) error {
	return h.transport.SendMessage(ctx, msg.Chat.ID, loc.t(i18n.MsgUnknownCommand), nil)
}

// command extracts the command name from a message, stripping the
// optional @botname suffix. Returns "" for non-command text.
func command(msg *telego.Message) string {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	name := strings.Fields(text)[0][1:]
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}

func matchCommand(names ...string) func(*telego.Message) bool {
	return func(msg *telego.Message) bool {
		cmd := command(msg)
		if cmd == "" {
			return false
		}
		for _, name := range names {
			if cmd == name {
				return true
			}
		}
		return false
	}
}

func matchLanguageSelection(msg *telego.Message) bool {
	return languageSelection.MatchString(msg.Text)
}

func matchAnyCommand(msg *telego.Message) bool {
	return strings.HasPrefix(strings.TrimSpace(msg.Text), "/")
}

func matchRelayable(msg *telego.Message) bool {
	return strings.TrimSpace(msg.Text) != "" || msg.Voice != nil
}
