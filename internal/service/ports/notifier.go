package ports

import (
	"context"
	"time"

	"slipway/internal/domain"
)

type Notifier interface {
	NotifyReserved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation)
	NotifyPendingApproval(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation)
	NotifyApproved(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation)
	NotifyCancelled(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation)
	NotifyTripReminder(ctx context.Context, m *domain.Member, v *domain.Vehicle, r *domain.Reservation)
	NotifyWaitlistOpening(ctx context.Context, m *domain.Member, vehicleName string, day time.Time)
}
