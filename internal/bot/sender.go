package bot

import (
	"context"

	tg "github.com/go-telegram/bot"
)

// SendText delivers a plain text message to a chat.
func SendText(ctx context.Context, b *tg.Bot, chatID int64, text string) error {
	_, err := b.SendMessage(ctx, &tg.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}
