package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

// TelegramNotifier pushes event reminders to a single chat. With an empty
// token it degrades to a disabled notifier that only logs.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	strategy retry.Strategy
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{
		chatID: chatID,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    2 * time.Second,
			Backoff:  2,
		},
		logger: logger,
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, reminders disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot
	return n, nil
}

// NotifyUpcoming sends one reminder for an event about to start.
func (n *TelegramNotifier) NotifyUpcoming(ctx context.Context, e domain.Event) {
	text := fmt.Sprintf(
		"*Upcoming event*\n\n%s\n%s – %s",
		e.Subject,
		e.Start.Format("02.01.2006 15:04"),
		e.End.Format("15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("reminder skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("reminder skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	err := retry.Do(func() error {
		_, sendErr := n.bot.Send(msg)
		return sendErr
	}, n.strategy)
	if err != nil {
		n.logger.Error("failed to send telegram reminder",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
