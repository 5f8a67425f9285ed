// Package telegram implements the notification channel port on top of the
// Telegram Bot API. One group chat, shared by the bar staff, receives an
// interactive message per live order.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Channel implements ports.NotificationChannel. A Channel constructed without
// a bot (missing token or chat id) stays usable: every call reports
// ports.ErrChannelUnavailable and the callers degrade as designed.
type Channel struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *slog.Logger
}

// NewChannel creates a channel bound to one chat. api may be nil when the bot
// is not configured.
func NewChannel(api *tgbotapi.BotAPI, chatID int64, logger *slog.Logger) *Channel {
	return &Channel{
		api:    api,
		chatID: chatID,
		logger: logger.With("component", "telegram_channel"),
	}
}

func (c *Channel) available() error {
	if c.api == nil || c.chatID == 0 {
		return ports.ErrChannelUnavailable
	}
	return nil
}

// Post sends the interactive order message and returns its message id.
// The keyboard matches the order's current status, so reposted InProgress
// orders get the in-progress controls, not the queued ones.
func (c *Channel) Post(ctx context.Context, o *order.Order, drink *cocktail.Cocktail) (int64, error) {
	if err := c.available(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	msg := tgbotapi.NewMessage(c.chatID, renderOrderMessage(o, drink))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard := keyboardFor(o); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}

	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send order message: %w", classify(err))
	}

	return int64(sent.MessageID), nil
}

// Update rewrites the interactive message body and controls after a
// non-terminal transition.
func (c *Channel) Update(ctx context.Context, messageID int64, o *order.Order, drink *cocktail.Cocktail) error {
	if err := c.available(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(c.chatID, int(messageID), renderOrderMessage(o, drink))
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = keyboardFor(o)

	if _, err := c.api.Send(edit); err != nil {
		return fmt.Errorf("edit order message %d: %w", messageID, classify(err))
	}

	return nil
}

// Remove deletes the interactive message after a terminal transition.
func (c *Channel) Remove(ctx context.Context, messageID int64) error {
	if err := c.available(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(c.chatID, int(messageID))); err != nil {
		return fmt.Errorf("delete order message %d: %w", messageID, classify(err))
	}

	return nil
}

// NotifyCompletion posts the plain terminal notice.
func (c *Channel) NotifyCompletion(ctx context.Context, userID, cocktailName string, status order.Status) error {
	if err := c.available(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(c.chatID, renderCompletionNotice(userID, cocktailName, status))
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send completion notice: %w", classify(err))
	}

	return nil
}

// classify maps Telegram API errors onto the channel port sentinels so the
// core can tell a vanished message from a broken channel.
func classify(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if strings.Contains(apiErr.Message, "message to delete not found") ||
			strings.Contains(apiErr.Message, "message to edit not found") {
			return fmt.Errorf("%w: %s", ports.ErrMessageNotFound, apiErr.Message)
		}
	}
	return err
}
