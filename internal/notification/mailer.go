package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
)

const timeLayout = "Mon Jan 2, 3:04 PM"

// Mailer sends member email through mailgun. With no API key configured it
// stays enabled as a no-op so local setups run without credentials.
type Mailer struct {
	mg     mailgun.Mailgun
	from   string
	logger logger.Logger
}

func NewMailer(domainName, apiKey, from string, logger logger.Logger) *Mailer {
	if apiKey == "" {
		logger.Warn("mailgun api key is empty, email notifications disabled")
		return &Mailer{mg: nil, from: from, logger: logger}
	}
	return &Mailer{
		mg:     mailgun.NewMailgun(domainName, apiKey),
		from:   from,
		logger: logger,
	}
}

func (n *Mailer) NotifyReserved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	subject := fmt.Sprintf("Reservation confirmed: %s", v.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour reservation for %s is confirmed:\n%s to %s.",
		m.FullName, v.Name,
		r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) NotifyPendingApproval(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	subject := fmt.Sprintf("Reservation pending approval: %s", v.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour request for %s (%s to %s) is awaiting administrator approval. "+
			"You'll get another email once it is reviewed.",
		m.FullName, v.Name,
		r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) NotifyApproved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	subject := fmt.Sprintf("Reservation approved: %s", v.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour reservation for %s (%s to %s) has been approved.",
		m.FullName, v.Name,
		r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) NotifyCancelled(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	subject := fmt.Sprintf("Reservation cancelled: %s", v.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour reservation for %s (%s to %s) has been cancelled.",
		m.FullName, v.Name,
		r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) NotifyTripReminder(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	subject := fmt.Sprintf("Reminder: %s tomorrow", v.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder that you have %s reserved tomorrow, %s to %s. "+
			"Check the weather before heading out.",
		m.FullName, v.Name,
		r.StartTime.Format(timeLayout), r.EndTime.Format(timeLayout),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) NotifyWaitlistOpening(ctx context.Context, m *domain.Member, vehicleName string, day time.Time) {
	subject := fmt.Sprintf("A slot opened up on %s", day.Format("Mon Jan 2"))
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news: time has opened up on %s for %s. "+
			"Slots go to whoever books first, so reserve soon if you still want it.",
		m.FullName, vehicleName, day.Format("Monday, January 2"),
	)
	n.send(ctx, m.Email, subject, body)
}

func (n *Mailer) send(ctx context.Context, to, subject, body string) {
	if n.mg == nil {
		n.logger.Debug("email skipped (mailgun disabled)", logger.String("subject", subject))
		return
	}
	if to == "" {
		n.logger.Debug("email skipped (no address)", logger.String("subject", subject))
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	msg := n.mg.NewMessage(n.from, subject, body, to)
	if _, _, err := n.mg.Send(ctx, msg); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
