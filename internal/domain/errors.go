package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrVehicleInactive   = errors.New("vehicle is not active")
	ErrMemberInactive    = errors.New("member is not active")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrNotAllowed        = errors.New("not allowed")
	ErrAlreadyWaitlisted = errors.New("member is already on the waitlist for that day")
	ErrUsernameTaken     = errors.New("username is already taken")
)

var ErrValidation = errors.New("validation error")

// ErrLockTimeout means the vehicle's admission lock could not be acquired in
// time. Contention, not a logical conflict: safe to retry with backoff.
var ErrLockTimeout = errors.New("timed out waiting for vehicle lock")

// OverlapConflictError rejects an admission that intersects existing
// occupancies. The colliding windows are reported verbatim; the request is
// never truncated or coalesced to fit.
type OverlapConflictError struct {
	Requested Interval
	Conflicts []Occupancy
}

func (e *OverlapConflictError) Error() string {
	return fmt.Sprintf("requested window [%s, %s) overlaps %d existing occupancies",
		e.Requested.Start.Format("2006-01-02 15:04"),
		e.Requested.End.Format("2006-01-02 15:04"),
		len(e.Conflicts),
	)
}

// LimitError names the member limit that failed and the offending numbers so
// the caller can render an actionable message.
type LimitError struct {
	Limit   string
	Current int
	Max     int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit exceeded: %d against a maximum of %d", e.Limit, e.Current, e.Max)
}

const (
	LimitMaxPending         = "max_pending"
	LimitMaxConsecutiveDays = "max_consecutive_days"
)
