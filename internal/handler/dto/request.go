package dto

type ReserveRequest struct {
	VehicleID    string `json:"vehicle_id" binding:"required,uuid"`
	MemberID     string `json:"member_id" binding:"required,uuid"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Notes        string `json:"notes"`
	ForcePending bool   `json:"force_pending"`
}

type ActorRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
}

type CreateVehicleRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=boat plane"`
}

type SetVehicleActiveRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Active  *bool  `json:"active" binding:"required"`
}

type CreateMemberRequest struct {
	Username           string `json:"username" binding:"required"`
	FullName           string `json:"full_name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	TelegramChatID     *int64 `json:"telegram_chat_id"`
	IsAdmin            bool   `json:"is_admin"`
	RequiresApproval   bool   `json:"requires_approval"`
	MaxPending         int    `json:"max_pending"`
	MaxConsecutiveDays int    `json:"max_consecutive_days"`
}

type CreateBlackoutRequest struct {
	ActorID   string  `json:"actor_id" binding:"required,uuid"`
	VehicleID *string `json:"vehicle_id"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Reason    string  `json:"reason"`
}

type JoinWaitlistRequest struct {
	MemberID  string `json:"member_id" binding:"required,uuid"`
	VehicleID string `json:"vehicle_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
}
