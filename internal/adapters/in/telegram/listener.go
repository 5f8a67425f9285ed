// Package telegram implements the remote control surface: bar staff drive
// order transitions by pressing inline buttons under the notification
// messages.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"homebar/internal/core/application/usecases/commands"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
	"homebar/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleTimeout bounds one callback's processing so a stuck database call
// cannot stall the update loop forever.
const handleTimeout = 10 * time.Second

// Listener long-polls Telegram for callback queries and translates button
// presses into status transitions. It never trusts the button: the pressed
// action only expresses a target status, and the transition handler validates
// the edge against the currently stored status. A button pressed on a stale
// message is acknowledged with an ephemeral warning, not applied twice.
type Listener struct {
	api                 *tgbotapi.BotAPI
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	logger              *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

// NewListener creates a listener. api may be nil when the bot is not
// configured; Start then becomes a no-op.
func NewListener(
	api *tgbotapi.BotAPI,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	logger *slog.Logger,
) *Listener {
	return &Listener{
		api:                 api,
		changeStatusHandler: changeStatusHandler,
		logger:              logger.With("component", "telegram_listener"),
	}
}

// Start launches the update loop in its own goroutine. Calling Start on an
// already running listener is a no-op.
func (l *Listener) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.api == nil {
		l.logger.Warn("Telegram bot is not configured, remote controls disabled")
		return
	}
	if l.done != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := l.api.GetUpdatesChan(cfg)

	go l.run(loopCtx, updates)
}

// Stop terminates the update loop and waits for it to drain.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == nil {
		return
	}

	l.cancel()
	l.api.StopReceivingUpdates()
	<-l.done
	l.done = nil
	l.cancel = nil
}

func (l *Listener) run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.CallbackQuery == nil {
				continue
			}
			l.handleCallback(ctx, update.CallbackQuery)
		}
	}
}

func (l *Listener) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	toast := l.process(handleCtx, cq.Data)

	// Answering releases the pressed button's spinner. A non-empty toast shows
	// as an ephemeral popup only to the staff member who pressed it.
	if _, err := l.api.Request(tgbotapi.NewCallback(cq.ID, toast)); err != nil {
		l.logger.WarnContext(handleCtx, "Failed to answer callback query",
			"callbackId", cq.ID, "error", err)
	}
}

// process applies the pressed action and returns the toast text, empty on
// success.
func (l *Listener) process(ctx context.Context, data string) string {
	target, orderID, err := parseCallbackData(data)
	if err != nil {
		l.logger.Warn("Dropping unparseable callback data", "data", data, "error", err)
		return ""
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		l.logger.Warn("Dropping invalid callback command", "data", data, "error", err)
		return ""
	}

	updated, err := l.changeStatusHandler.Handle(ctx, cmd)
	switch {
	case err == nil:
		l.logger.InfoContext(ctx, "Applied remote transition",
			"orderId", orderID.String(), "status", updated.Status().String())
		return ""
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("❌ Order with ID %s not found", orderID.String())
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, ports.ErrOrderStatusConflict):
		return "⚠️ Cannot perform action: the order has moved on"
	default:
		l.logger.ErrorContext(ctx, "Remote transition failed",
			"orderId", orderID.String(), "error", err)
		return "❌ Error processing request"
	}
}

// parseCallbackData splits "<action>_<orderID>" into a target status and an
// order id. Only take, ready and cancel are recognized.
func parseCallbackData(data string) (order.Status, kernel.UUID, error) {
	action, rawID, found := strings.Cut(data, "_")
	if !found {
		return order.Unknown, kernel.UUID{}, fmt.Errorf("callback data %q has no order id", data)
	}

	var target order.Status
	switch action {
	case "take":
		target = order.InProgress
	case "ready":
		target = order.Ready
	case "cancel":
		target = order.Cancelled
	default:
		return order.Unknown, kernel.UUID{}, fmt.Errorf("unknown callback action %q", action)
	}

	orderID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return order.Unknown, kernel.UUID{}, err
	}

	return target, orderID, nil
}
