package telegram

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// botTransport adapts telego.Bot to the handlers.Transport capability.
type botTransport struct {
	bot *telego.Bot
}

func (t *botTransport) SendMessage(ctx context.Context, chatID int64, text string, markup telego.ReplyMarkup) error {
	_, err := t.bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      tu.ID(chatID),
		Text:        text,
		ReplyMarkup: markup,
	})
	return err
}

func (t *botTransport) ReplyMessage(ctx context.Context, chatID int64, replyToMessageID int, text string) error {
	_, err := t.bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID: tu.ID(chatID),
		Text:   text,
		ReplyParameters: (&telego.ReplyParameters{
			MessageID: replyToMessageID,
		}).WithAllowSendingWithoutReply(),
	})
	return err
}

func (t *botTransport) ForwardMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) (int, error) {
	msg, err := t.bot.ForwardMessage(ctx, &telego.ForwardMessageParams{
		ChatID:     tu.ID(toChatID),
		FromChatID: tu.ID(fromChatID),
		MessageID:  messageID,
	})
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

func (t *botTransport) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	file, err := t.bot.GetFile(ctx, &telego.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, "", err
	}
	data, err := tu.DownloadFile(t.bot.FileDownloadURL(file.FilePath))
	if err != nil {
		return nil, "", err
	}
	return data, file.FilePath, nil
}
