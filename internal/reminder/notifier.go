package reminder

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"smartodo/internal/model"
	"smartodo/pkg/log"
)

// Kind distinguishes the two reminder triggers.
type Kind string

const (
	KindDueToday    Kind = "due_today"
	KindDueThreeDay Kind = "due_three_day"
)

// Notifier delivers a reminder for a task. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, t model.Task, kind Kind) error
}

// message renders a human-readable reminder line.
func message(t model.Task, kind Kind) string {
	when := "今天到期"
	if kind == KindDueThreeDay {
		when = "3天后到期"
	}
	line := fmt.Sprintf("⏰ 任务提醒: %s (%s)", t.Title, when)
	if t.StartTime != "" {
		line += " " + t.StartTime
		if t.EndTime != "" {
			line += "-" + t.EndTime
		}
	}
	return line
}

// logNotifier writes reminders to the service log. Always wired, so
// reminders are visible even without a Telegram bot configured.
type logNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Notify(ctx context.Context, t model.Task, kind Kind) error {
	n.l.Infof(ctx, "%s [task=%s due=%s]", message(t, kind), t.ID, t.DueDate)
	return nil
}

// telegramNotifier pushes reminders to a fixed chat via a bot.
type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot with the given token.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *telegramNotifier) Notify(_ context.Context, t model.Task, kind Kind) error {
	msg := tgbotapi.NewMessage(n.chatID, message(t, kind))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram reminder: %w", err)
	}
	return nil
}
