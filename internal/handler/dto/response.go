package dto

import (
	"time"

	"slipway/internal/domain"
)

type VehicleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicle_id"`
	MemberID    string `json:"member_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	VehicleID   string             `json:"vehicle_id"`
	Date        string             `json:"date"`
	Gaps        []IntervalResponse `json:"gaps"`
	FullyBooked bool               `json:"fully_booked"`
}

type MemberResponse struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	TelegramChatID     *int64 `json:"telegram_chat_id,omitempty"`
	IsAdmin            bool   `json:"is_admin"`
	RequiresApproval   bool   `json:"requires_approval"`
	MaxPending         int    `json:"max_pending"`
	MaxConsecutiveDays int    `json:"max_consecutive_days"`
	CreatedAt          string `json:"created_at"`
}

type BlackoutResponse struct {
	ID        string  `json:"id"`
	VehicleID *string `json:"vehicle_id,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Reason    string  `json:"reason,omitempty"`
}

type WaitlistEntryResponse struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id"`
	VehicleID string `json:"vehicle_id"`
	Date      string `json:"date"`
	Notified  bool   `json:"notified"`
}

type OccupancyResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

type LimitDetail struct {
	Limit   string `json:"limit"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
}

// ErrorResponse carries the structured parts of a rejection where they exist:
// colliding occupancies for overlap conflicts, the failed limit for limit
// rejections, a retryable hint for lock timeouts.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Conflicts []OccupancyResponse `json:"conflicts,omitempty"`
	Limit     *LimitDetail        `json:"limit,omitempty"`
	Retryable bool                `json:"retryable,omitempty"`
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Name:      v.Name,
		Type:      string(v.Type),
		Active:    v.Active,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		MemberID:  r.MemberID,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.CancelledAt != nil {
		resp.CancelledAt = r.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

func ToAvailabilityResponse(a *domain.DayAvailability) AvailabilityResponse {
	gaps := make([]IntervalResponse, 0, len(a.Gaps))
	for _, g := range a.Gaps {
		gaps = append(gaps, IntervalResponse{
			Start: g.Start.Format(time.RFC3339),
			End:   g.End.Format(time.RFC3339),
		})
	}
	return AvailabilityResponse{
		VehicleID:   a.VehicleID,
		Date:        a.Day.Format("2006-01-02"),
		Gaps:        gaps,
		FullyBooked: a.FullyBooked,
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:                 m.ID,
		Username:           m.Username,
		FullName:           m.FullName,
		Email:              m.Email,
		TelegramChatID:     m.TelegramChatID,
		IsAdmin:            m.IsAdmin,
		RequiresApproval:   m.RequiresApproval,
		MaxPending:         m.MaxPending,
		MaxConsecutiveDays: m.MaxConsecutiveDays,
		CreatedAt:          m.CreatedAt.Format(time.RFC3339),
	}
}

func ToBlackoutResponse(b *domain.Blackout) BlackoutResponse {
	return BlackoutResponse{
		ID:        b.ID,
		VehicleID: b.VehicleID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		Reason:    b.Reason,
	}
}

func ToWaitlistEntryResponse(e *domain.WaitlistEntry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:        e.ID,
		MemberID:  e.MemberID,
		VehicleID: e.VehicleID,
		Date:      e.Day.Format("2006-01-02"),
		Notified:  e.Notified,
	}
}

func ToOccupancyResponses(occ []domain.Occupancy) []OccupancyResponse {
	out := make([]OccupancyResponse, 0, len(occ))
	for _, o := range occ {
		out = append(out, OccupancyResponse{
			Start:  o.Start.Format(time.RFC3339),
			End:    o.End.Format(time.RFC3339),
			Kind:   string(o.Kind),
			Detail: o.Detail,
		})
	}
	return out
}
