package ports

import (
	"context"
	"time"

	"slipway/internal/domain"
)

type WaitlistRepo interface {
	Create(ctx context.Context, e *domain.WaitlistEntry) error
	// ClaimUnnotified atomically flags the un-notified entries for the
	// vehicle/day as notified and returns the ones claimed. A second claim for
	// the same day returns nothing, so duplicate slot-opened events are cheap.
	ClaimUnnotified(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error)
	ListByVehicleDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error)
}

// SlotEvents is consumed by the waitlist collaborator. SlotOpened fires
// synchronously after a committed cancellation; delivery is best-effort
// at-least-once.
type SlotEvents interface {
	SlotOpened(ctx context.Context, vehicleID string, day time.Time)
}
