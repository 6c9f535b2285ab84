package notification

import (
	"context"
	"time"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

// Multi fans a notification out to every configured channel.
type Multi []ports.Notifier

func (mu Multi) NotifyReserved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	for _, n := range mu {
		n.NotifyReserved(ctx, m, v, r)
	}
}

func (mu Multi) NotifyPendingApproval(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	for _, n := range mu {
		n.NotifyPendingApproval(ctx, m, v, r)
	}
}

func (mu Multi) NotifyApproved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	for _, n := range mu {
		n.NotifyApproved(ctx, m, v, r)
	}
}

func (mu Multi) NotifyCancelled(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	for _, n := range mu {
		n.NotifyCancelled(ctx, m, v, r)
	}
}

func (mu Multi) NotifyTripReminder(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation) {
	for _, n := range mu {
		n.NotifyTripReminder(ctx, m, v, r)
	}
}

func (mu Multi) NotifyWaitlistOpening(ctx context.Context, m *domain.Member, vehicleName string, day time.Time) {
	for _, n := range mu {
		n.NotifyWaitlistOpening(ctx, m, vehicleName, day)
	}
}
