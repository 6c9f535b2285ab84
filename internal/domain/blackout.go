package domain

import "time"

// Blackout is an administrator-defined window that occupies a vehicle's
// schedule like a reservation but has no owner and cannot be cancelled by the
// cancellation flow. A nil VehicleID applies the blackout to the whole fleet.
type Blackout struct {
	ID        string    `json:"id"`
	VehicleID *string   `json:"vehicle_id,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Blackout) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
