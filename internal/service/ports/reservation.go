package ports

import (
	"context"
	"time"

	"slipway/internal/domain"
)

// AdmissionStore is the transaction-scoped view handed to the engine while it
// holds a vehicle's admission lock. Reads through it see the complete state
// any earlier lock holder committed.
type AdmissionStore interface {
	Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error)
	Insert(ctx context.Context, r *domain.Reservation) error
	// UpdateStatus flips a reservation's status only if its current status is
	// one of from, and reports whether a row changed.
	UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error)
}

type ReservationRepo interface {
	// InVehicleLock runs fn while holding the exclusive admission section for
	// (vehicleID, day). The section is scoped to one vehicle and date:
	// admissions on other vehicles or dates proceed in parallel. Returns
	// domain.ErrLockTimeout when the section cannot be acquired in time; fn
	// errors abort the transaction with no visible writes.
	InVehicleLock(ctx context.Context, vehicleID string, day time.Time, fn func(AdmissionStore) error) error

	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Reservation, error)

	// Occupying is the lock-free read used by the availability query.
	Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error)

	// CountActiveOrPending counts the member's slot-holding reservations
	// starting at or after ref.
	CountActiveOrPending(ctx context.Context, memberID string, ref time.Time) (int, error)

	// MemberDays returns the distinct calendar dates (midnight, location per
	// storage) of the member's future slot-holding reservations.
	MemberDays(ctx context.Context, memberID string, ref time.Time) ([]time.Time, error)

	// UpdateStatus is the unlocked variant used by the approval flow, with the
	// same current-status guard as AdmissionStore.UpdateStatus.
	UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error)

	// MarkReminded flags reservations starting inside window as reminded and
	// returns the ones newly flagged.
	MarkReminded(ctx context.Context, window domain.Interval) ([]*domain.Reservation, error)
}
