package ports

import (
	"context"
	"time"

	"slipway/internal/domain"
)

// AvailabilityCache holds short-lived availability snapshots. Misses and cache
// errors are equivalent: the caller recomputes from the store.
type AvailabilityCache interface {
	Get(ctx context.Context, vehicleID string, day time.Time) (*domain.DayAvailability, error)
	Set(ctx context.Context, avail *domain.DayAvailability) error
	Invalidate(ctx context.Context, vehicleID string, day time.Time) error
}
