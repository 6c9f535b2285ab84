package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
)

// TelegramNotifier mirrors the email notifications for members who linked a
// telegram chat. Disabled when no bot token is configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReserved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*Reservation confirmed*\n%s\n%s to %s",
		v.Name, r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	))
}

func (n *TelegramNotifier) NotifyPendingApproval(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*Reservation pending approval*\n%s\n%s to %s",
		v.Name, r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	))
}

func (n *TelegramNotifier) NotifyApproved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*Reservation approved*\n%s\n%s to %s",
		v.Name, r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	))
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*Reservation cancelled*\n%s\n%s to %s",
		v.Name, r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	))
}

func (n *TelegramNotifier) NotifyTripReminder(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*Trip reminder*\n%s tomorrow, %s to %s",
		v.Name, r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	))
}

func (n *TelegramNotifier) NotifyWaitlistOpening(ctx context.Context, m *domain.Member, vehicleName string, day time.Time) {
	n.send(ctx, m.TelegramChatID, fmt.Sprintf(
		"*A slot opened up*\n%s on %s is bookable again.",
		vehicleName, day.Format("Monday, January 2"),
	))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("telegram skipped (bot disabled)", logger.String("text", text))
		return
	}
	if chatID == nil {
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
