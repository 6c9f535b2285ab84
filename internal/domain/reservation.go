package domain

import "time"

type ReservationStatus string

const (
	StatusActive          ReservationStatus = "active"
	StatusPendingApproval ReservationStatus = "pending_approval"
	StatusCancelled       ReservationStatus = "cancelled"
)

// OccupyingStatuses are the statuses that hold a vehicle's time slot.
var OccupyingStatuses = []ReservationStatus{StatusActive, StatusPendingApproval}

// CanTransition reports whether a status change is allowed. Cancelled is
// terminal; pending approval may be approved or rejected.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	switch s {
	case StatusActive:
		return to == StatusCancelled
	case StatusPendingApproval:
		return to == StatusActive || to == StatusCancelled
	default:
		return false
	}
}

type Reservation struct {
	ID          string            `json:"id"`
	VehicleID   string            `json:"vehicle_id"`
	MemberID    string            `json:"member_id"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Status      ReservationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}

func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}

type ReserveInput struct {
	VehicleID    string
	MemberID     string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
	ForcePending bool
}

type CreateBlackoutInput struct {
	VehicleID *string
	StartTime time.Time
	EndTime   time.Time
	Reason    string
}
