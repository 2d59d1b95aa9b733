// Package notify posts announcements to the group chat.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers a Markdown message to the group.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Telegram sends messages to one chat through the Bot API.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authorizes the bot token.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat ID not set")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	slog.Info("Authorized on account", "username", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// Send implements Notifier.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// Log is the Notifier used when no chat is configured. It only logs.
type Log struct{}

// Send implements Notifier.
func (Log) Send(_ context.Context, text string) error {
	slog.Debug("Announcement not sent, no chat configured", "length", len(text))
	return nil
}
