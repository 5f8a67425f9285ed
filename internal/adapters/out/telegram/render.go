package telegram

import (
	"fmt"
	"strings"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// orderTimeLayout renders timestamps the way the bar staff reads them.
const orderTimeLayout = "02.01.2006, 15:04:05"

func strengthEmoji(s cocktail.Strength) string {
	switch s.Value() {
	case 1:
		return "🟢"
	case 2:
		return "🟡"
	case 3:
		return "🔴"
	default:
		return "⚪"
	}
}

func statusEmoji(s order.Status) string {
	switch s {
	case order.Queued:
		return "⏳"
	case order.InProgress:
		return "🔄"
	case order.Ready:
		return "✅"
	case order.Cancelled:
		return "❌"
	default:
		return "📦"
	}
}

func ingredientLines(ingredients []cocktail.Ingredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, fmt.Sprintf("• %s - %s", ing.Name, ing.Amount))
	}
	return strings.Join(lines, "\n")
}

// renderOrderMessage builds the Markdown body of the interactive order
// message. A freshly queued order is announced as new; any other status gets
// an explicit status line so reposted and updated messages stay readable.
func renderOrderMessage(o *order.Order, c *cocktail.Cocktail) string {
	var b strings.Builder

	if o.Status() == order.Queued {
		b.WriteString("🍹 *Новый заказ*\n\n")
	} else {
		b.WriteString("🍹 *Заказ*\n\n")
	}

	fmt.Fprintf(&b, "👤 *Клиент:* %s\n", o.UserID())
	fmt.Fprintf(&b, "🍸 *Напиток:* %s\n", c.Name())
	fmt.Fprintf(&b, "%s *Крепость:* %d/3\n", strengthEmoji(c.Strength()), c.Strength().Value())
	if o.Status() != order.Queued {
		fmt.Fprintf(&b, "%s *Статус:* %s\n", statusEmoji(o.Status()), o.Status().Label())
	}

	fmt.Fprintf(&b, "\n📋 *Состав:*\n%s\n", ingredientLines(c.Ingredients()))
	fmt.Fprintf(&b, "\n📝 *Рецепт:*\n%s\n", c.Recipe())
	fmt.Fprintf(&b, "\n⏰ *Время заказа:* %s\n", o.CreatedAt().Format(orderTimeLayout))
	fmt.Fprintf(&b, "🆔 *ID:* `%s`", o.ID().String())

	return b.String()
}

// renderCompletionNotice builds the plain terminal notice posted after the
// interactive message is deleted.
func renderCompletionNotice(userID, cocktailName string, status order.Status) string {
	if status == order.Ready {
		return fmt.Sprintf("✅ Заказ готов: %s для %s", cocktailName, userID)
	}
	return fmt.Sprintf("❌ Заказ отменен: %s для %s", cocktailName, userID)
}

// keyboardFor returns the inline controls matching the order's status, or nil
// for terminal statuses that admit no further action.
func keyboardFor(o *order.Order) *tgbotapi.InlineKeyboardMarkup {
	id := o.ID().String()

	switch o.Status() {
	case order.Queued:
		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "cancel_"+id),
				tgbotapi.NewInlineKeyboardButtonData("✅ Взять в работу", "take_"+id),
			),
		)
		return &markup
	case order.InProgress:
		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "cancel_"+id),
				tgbotapi.NewInlineKeyboardButtonData("✅ Готово", "ready_"+id),
			),
		)
		return &markup
	default:
		return nil
	}
}
