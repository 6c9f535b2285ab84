package domain

import "time"

// Member is an already-resolved requester identity. Family accounts sharing a
// slot are collapsed into a single member upstream of this service.
type Member struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	TelegramChatID     *int64    `json:"telegram_chat_id,omitempty"`
	IsAdmin            bool      `json:"is_admin"`
	RequiresApproval   bool      `json:"requires_approval"`
	MaxPending         int       `json:"max_pending"`
	MaxConsecutiveDays int       `json:"max_consecutive_days"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	Username           string
	FullName           string
	Email              string
	TelegramChatID     *int64
	IsAdmin            bool
	RequiresApproval   bool
	MaxPending         int
	MaxConsecutiveDays int
}

// MemberUsage is a per-member reservation tally for the stats page.
type MemberUsage struct {
	MemberID  string `json:"member_id"`
	FullName  string `json:"full_name"`
	Past      int    `json:"past"`
	Upcoming  int    `json:"upcoming"`
	Total     int    `json:"total"`
	Cancelled int    `json:"cancelled"`
}
