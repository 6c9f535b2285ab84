package domain

import "time"

// WaitlistEntry records a member's interest in a fully booked vehicle/day.
// Promotion only flags the entry for outreach; it never auto-books.
type WaitlistEntry struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	VehicleID string    `json:"vehicle_id"`
	Day       time.Time `json:"day"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

type JoinWaitlistInput struct {
	MemberID  string
	VehicleID string
	Day       time.Time
}
