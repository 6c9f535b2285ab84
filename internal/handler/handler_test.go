package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"slipway/internal/domain"
	"slipway/internal/handler/dto"
	hmocks "slipway/internal/handler/mocks"
)

type handlerFixture struct {
	reservations *hmocks.MockReservationSvc
	availability *hmocks.MockAvailabilitySvc
	vehicles     *hmocks.MockVehicleSvc
	members      *hmocks.MockMemberSvc
	waitlist     *hmocks.MockWaitlistSvc
	router       http.Handler
}

func setupRouter(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		reservations: hmocks.NewMockReservationSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		vehicles:     hmocks.NewMockVehicleSvc(t),
		members:      hmocks.NewMockMemberSvc(t),
		waitlist:     hmocks.NewMockWaitlistSvc(t),
	}

	h := NewHandler(f.reservations, f.availability, f.vehicles, f.members, f.waitlist, time.UTC)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.GET("/vehicles/:id/availability", h.GetAvailability)
		api.POST("/reservations", h.Reserve)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/waitlist", h.JoinWaitlist)
	}

	f.router = r
	return f
}

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        uuid.New().String(),
		VehicleID: uuid.New().String(),
		MemberID:  uuid.New().String(),
		StartTime: time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC),
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

func TestHandler_Reserve_Success(t *testing.T) {
	f := setupRouter(t)

	res := sampleReservation()
	f.reservations.EXPECT().Reserve(mock.Anything, mock.Anything).Return(res, nil)

	w := postJSON(t, f.router, "/api/reservations", dto.ReserveRequest{
		VehicleID: res.VehicleID,
		MemberID:  res.MemberID,
		StartTime: res.StartTime.Format(time.RFC3339),
		EndTime:   res.EndTime.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_Reserve_BadTime(t *testing.T) {
	f := setupRouter(t)

	w := postJSON(t, f.router, "/api/reservations", dto.ReserveRequest{
		VehicleID: uuid.New().String(),
		MemberID:  uuid.New().String(),
		StartTime: "tomorrow-ish",
		EndTime:   "later",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_OverlapConflict(t *testing.T) {
	f := setupRouter(t)

	start := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	conflictErr := &domain.OverlapConflictError{
		Requested: domain.Interval{Start: start, End: start.Add(2 * time.Hour)},
		Conflicts: []domain.Occupancy{
			{Start: start, End: start.Add(3 * time.Hour), Kind: domain.OccupancyReservation, HolderID: "m2", Detail: "Bob River"},
		},
	}
	f.reservations.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, conflictErr)

	w := postJSON(t, f.router, "/api/reservations", dto.ReserveRequest{
		VehicleID: uuid.New().String(),
		MemberID:  uuid.New().String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "reservation", resp.Conflicts[0].Kind)
	assert.False(t, resp.Retryable)
}

func TestHandler_Reserve_LimitExceeded(t *testing.T) {
	f := setupRouter(t)

	limitErr := &domain.LimitError{Limit: domain.LimitMaxPending, Current: 7, Max: 7}
	f.reservations.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, limitErr)

	start := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	w := postJSON(t, f.router, "/api/reservations", dto.ReserveRequest{
		VehicleID: uuid.New().String(),
		MemberID:  uuid.New().String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Limit)
	assert.Equal(t, "max_pending", resp.Limit.Limit)
	assert.Equal(t, 7, resp.Limit.Max)
}

func TestHandler_Reserve_LockTimeoutRetryable(t *testing.T) {
	f := setupRouter(t)

	f.reservations.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrLockTimeout)

	start := time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC)
	w := postJSON(t, f.router, "/api/reservations", dto.ReserveRequest{
		VehicleID: uuid.New().String(),
		MemberID:  uuid.New().String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Retryable)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.reservations.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id, nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservation_BadID(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-a-uuid", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelReservation_ReportsIdempotence(t *testing.T) {
	f := setupRouter(t)

	res := sampleReservation()
	res.Status = domain.StatusCancelled
	actor := uuid.New().String()

	f.reservations.EXPECT().Cancel(mock.Anything, res.ID, actor).Return(res, false, nil)

	w := postJSON(t, f.router, "/api/reservations/"+res.ID+"/cancel", dto.ActorRequest{ActorID: actor})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_cancelled", resp.Status)
}

func TestHandler_CancelReservation_Forbidden(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	f.reservations.EXPECT().Cancel(mock.Anything, id, actor).Return(nil, false, domain.ErrNotAllowed)

	w := postJSON(t, f.router, "/api/reservations/"+id+"/cancel", dto.ActorRequest{ActorID: actor})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveReservation_InvalidTransition(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	actor := uuid.New().String()
	f.reservations.EXPECT().Approve(mock.Anything, id, actor).Return(nil, domain.ErrInvalidTransition)

	w := postJSON(t, f.router, "/api/reservations/"+id+"/approve", dto.ActorRequest{ActorID: actor})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	f := setupRouter(t)

	vehicleID := uuid.New().String()
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	avail := &domain.DayAvailability{
		VehicleID: vehicleID,
		Day:       day,
		Gaps: []domain.Interval{
			{Start: day.Add(6 * time.Hour), End: day.Add(9 * time.Hour)},
		},
	}
	f.availability.EXPECT().Day(mock.Anything, vehicleID, day, time.Duration(0)).Return(avail, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?date=2026-06-10", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-06-10", resp.Date)
	require.Len(t, resp.Gaps, 1)
	assert.False(t, resp.FullyBooked)
}

func TestHandler_GetAvailability_MinDuration(t *testing.T) {
	f := setupRouter(t)

	vehicleID := uuid.New().String()
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	f.availability.EXPECT().Day(mock.Anything, vehicleID, day, 3*time.Hour).
		Return(&domain.DayAvailability{VehicleID: vehicleID, Day: day}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?date=2026-06-10&min_duration=3h", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetAvailability_BadDate(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+uuid.New().String()+"/availability?date=June+10", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateVehicle_Success(t *testing.T) {
	f := setupRouter(t)

	vehicle := &domain.Vehicle{
		ID: uuid.New().String(), Name: "Chinook", Type: domain.VehicleTypeBoat, Active: true,
	}
	f.vehicles.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(vehicle, nil)

	w := postJSON(t, f.router, "/api/vehicles", dto.CreateVehicleRequest{
		ActorID: uuid.New().String(), Name: "Chinook", Type: "boat",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Chinook", resp.Name)
}

func TestHandler_CreateVehicle_RejectsUnknownType(t *testing.T) {
	f := setupRouter(t)

	w := postJSON(t, f.router, "/api/vehicles", dto.CreateVehicleRequest{
		ActorID: uuid.New().String(), Name: "Zeppelin", Type: "airship",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinWaitlist_Success(t *testing.T) {
	f := setupRouter(t)

	entry := &domain.WaitlistEntry{
		ID:        uuid.New().String(),
		MemberID:  uuid.New().String(),
		VehicleID: uuid.New().String(),
		Day:       time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	f.waitlist.EXPECT().Join(mock.Anything, mock.Anything).Return(entry, nil)

	w := postJSON(t, f.router, "/api/waitlist", dto.JoinWaitlistRequest{
		MemberID:  entry.MemberID,
		VehicleID: entry.VehicleID,
		Date:      "2026-06-10",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-06-10", resp.Date)
}

func TestHandler_JoinWaitlist_Duplicate(t *testing.T) {
	f := setupRouter(t)

	f.waitlist.EXPECT().Join(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyWaitlisted)

	w := postJSON(t, f.router, "/api/waitlist", dto.JoinWaitlistRequest{
		MemberID:  uuid.New().String(),
		VehicleID: uuid.New().String(),
		Date:      "2026-06-10",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}
