package handlers

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"

	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
)

// relay moves plain messages between user chats and the support group.
// No session state is kept: a staff reply is recognized purely by being
// a reply, inside the support group, to a forward that still carries
// its original sender.
func (h *Handler) relay(ctx context.Context, msg *telego.Message, loc locale) error {
	if msg.Chat.ID == h.supportChatID && msg.ReplyToMessage != nil {
		return h.relayStaffReply(ctx, msg, msg.ReplyToMessage)
	}
	return h.relayRequest(ctx, msg, loc)
}

// relayStaffReply routes a support-group reply back to the user the
// replied-to forward originated from. The two relay paths are mutually
// exclusive: a group reply is never forwarded back into the group.
func (h *Handler) relayStaffReply(ctx context.Context, msg, reply *telego.Message) error {
	if origin, ok := reply.ForwardOrigin.(*telego.MessageOriginUser); ok {
		if err := h.transport.SendMessage(ctx, origin.SenderUser.ID, msg.Text, nil); err != nil {
			return fmt.Errorf("deliver staff reply to user %d: %w", origin.SenderUser.ID, err)
		}
		return nil
	}
	if reply.From != nil && reply.From.ID == h.self.ID {
		// One of our forwards, but the sender's privacy settings hid the
		// origin. Never guess a recipient; tell the staff instead. The
		// group has no stored preference, so the notice stays in the
		// base language.
		h.log.Warn("Staff reply without forward attribution", "message_id", msg.MessageID)
		return h.transport.ReplyMessage(ctx, h.supportChatID, msg.MessageID, i18n.MsgNoAttribution)
	}
	// A reply to ordinary staff conversation; nothing to relay.
	h.log.Debug("Ignoring group reply without forward attribution", "message_id", msg.MessageID)
	return nil
}

// relayRequest forwards a fresh support request into the group and then
// acknowledges the sender, in that order. If the forward fails the
// acknowledgment is withheld: the request never reached staff.
func (h *Handler) relayRequest(ctx context.Context, msg *telego.Message, loc locale) error {
	forwardedID, err := h.transport.ForwardMessage(ctx, h.supportChatID, msg.Chat.ID, msg.MessageID)
	if err != nil {
		return fmt.Errorf("forward support request: %w", err)
	}
	if msg.Voice != nil {
		h.postTranscript(ctx, msg.Voice, forwardedID, loc.tag)
	}
	if err := h.transport.SendMessage(ctx, msg.Chat.ID, loc.t(i18n.MsgAck), nil); err != nil {
		return fmt.Errorf("acknowledge support request: %w", err)
	}
	return nil
}
