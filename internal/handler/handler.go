package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"slipway/internal/domain"
	"slipway/internal/handler/dto"
)

type ReservationSvc interface {
	Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, actorID string) (*domain.Reservation, bool, error)
	Approve(ctx context.Context, id, actorID string) (*domain.Reservation, error)
	Reject(ctx context.Context, id, actorID string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Reservation, error)
}

type AvailabilitySvc interface {
	Day(ctx context.Context, vehicleID string, day time.Time, minDur time.Duration) (*domain.DayAvailability, error)
}

type VehicleSvc interface {
	Create(ctx context.Context, actorID string, input domain.CreateVehicleInput) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	SetActive(ctx context.Context, actorID, id string, active bool) error
	CreateBlackout(ctx context.Context, actorID string, input domain.CreateBlackoutInput) (*domain.Blackout, error)
	ListBlackouts(ctx context.Context) ([]*domain.Blackout, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Deactivate(ctx context.Context, actorID, id string) error
	UsageStats(ctx context.Context) ([]domain.MemberUsage, error)
}

type WaitlistSvc interface {
	Join(ctx context.Context, in domain.JoinWaitlistInput) (*domain.WaitlistEntry, error)
	ListByVehicleDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error)
}

type Handler struct {
	reservations ReservationSvc
	availability AvailabilitySvc
	vehicles     VehicleSvc
	members      MemberSvc
	waitlist     WaitlistSvc
	loc          *time.Location
}

func NewHandler(
	reservations ReservationSvc,
	availability AvailabilitySvc,
	vehicles VehicleSvc,
	members MemberSvc,
	waitlist WaitlistSvc,
	loc *time.Location,
) *Handler {
	return &Handler{
		reservations: reservations,
		availability: availability,
		vehicles:     vehicles,
		members:      members,
		waitlist:     waitlist,
		loc:          loc,
	}
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time, expected RFC3339"})
		return
	}

	res, err := h.reservations.Reserve(c.Request.Context(), domain.ReserveInput{
		VehicleID:    req.VehicleID,
		MemberID:     req.MemberID,
		StartTime:    start,
		EndTime:      end,
		Notes:        req.Notes,
		ForcePending: req.ForcePending,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	from, err := h.parseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := h.parseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}

	// The range is inclusive of the "to" date.
	list, err := h.reservations.ListRange(c.Request.Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(list))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, cancelled, err := h.reservations.Cancel(c.Request.Context(), id, req.ActorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "cancelled"
	if !cancelled {
		status = "already_cancelled"
	}
	c.JSON(http.StatusOK, ginext.H{
		"status":      status,
		"reservation": dto.ToReservationResponse(res),
	})
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	h.resolvePending(c, h.reservations.Approve)
}

func (h *Handler) RejectReservation(c *ginext.Context) {
	h.resolvePending(c, h.reservations.Reject)
}

func (h *Handler) resolvePending(c *ginext.Context, resolve func(context.Context, string, string) (*domain.Reservation, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := resolve(c.Request.Context(), id, req.ActorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) GetMemberReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	list, err := h.reservations.ListByMember(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(list))
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	vehicleID := c.Param("id")
	if _, err := uuid.Parse(vehicleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	day, err := h.parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	var minDur time.Duration
	if raw := c.Query("min_duration"); raw != "" {
		minDur, err = time.ParseDuration(raw)
		if err != nil || minDur <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_duration, expected a duration like 2h"})
			return
		}
	}

	avail, err := h.availability.Day(c.Request.Context(), vehicleID, day, minDur)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(avail))
}

// Vehicles

func (h *Handler) CreateVehicle(c *ginext.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), req.ActorID, domain.CreateVehicleInput{
		Name: req.Name,
		Type: domain.VehicleType(req.Type),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) ListVehicles(c *ginext.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetVehicleActive(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	var req dto.SetVehicleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.vehicles.SetActive(c.Request.Context(), req.ActorID, id, *req.Active); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Blackouts

func (h *Handler) CreateBlackout(c *ginext.Context) {
	var req dto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time, expected RFC3339"})
		return
	}

	blackout, err := h.vehicles.CreateBlackout(c.Request.Context(), req.ActorID, domain.CreateBlackoutInput{
		VehicleID: req.VehicleID,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlackoutResponse(blackout))
}

func (h *Handler) ListBlackouts(c *ginext.Context) {
	blackouts, err := h.vehicles.ListBlackouts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BlackoutResponse, 0, len(blackouts))
	for _, b := range blackouts {
		resp = append(resp, dto.ToBlackoutResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.members.Create(c.Request.Context(), domain.CreateMemberInput{
		Username:           req.Username,
		FullName:           req.FullName,
		Email:              req.Email,
		TelegramChatID:     req.TelegramChatID,
		IsAdmin:            req.IsAdmin,
		RequiresApproval:   req.RequiresApproval,
		MaxPending:         req.MaxPending,
		MaxConsecutiveDays: req.MaxConsecutiveDays,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) DeactivateMember(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.members.Deactivate(c.Request.Context(), req.ActorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.members.UsageStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Waitlist

func (h *Handler) JoinWaitlist(c *ginext.Context) {
	var req dto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	day, err := h.parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.waitlist.Join(c.Request.Context(), domain.JoinWaitlistInput{
		MemberID:  req.MemberID,
		VehicleID: req.VehicleID,
		Day:       day,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ListWaitlist(c *ginext.Context) {
	vehicleID := c.Query("vehicle_id")
	if _, err := uuid.Parse(vehicleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle_id"})
		return
	}

	day, err := h.parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	entries, err := h.waitlist.ListByVehicleDay(c.Request.Context(), vehicleID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WaitlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToWaitlistEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, h.loc)
}

func toReservationResponses(list []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var overlapErr *domain.OverlapConflictError
	var limitErr *domain.LimitError

	switch {
	case errors.As(err, &overlapErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:     overlapErr.Error(),
			Conflicts: dto.ToOccupancyResponses(overlapErr.Conflicts),
		})

	case errors.As(err, &limitErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: limitErr.Error(),
			Limit: &dto.LimitDetail{
				Limit:   limitErr.Limit,
				Current: limitErr.Current,
				Max:     limitErr.Max,
			},
		})

	case errors.Is(err, domain.ErrLockTimeout):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     err.Error(),
			Retryable: true,
		})

	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVehicleInactive),
		errors.Is(err, domain.ErrMemberInactive),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyWaitlisted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAllowed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
