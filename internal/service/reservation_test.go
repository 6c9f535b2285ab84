package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
	"slipway/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testRules() Rules {
	return Rules{
		Loc:                time.UTC,
		DayStart:           6 * time.Hour,
		DayEnd:             20 * time.Hour,
		MinDuration:        2 * time.Hour,
		MaxDuration:        6 * time.Hour,
		Granularity:        30 * time.Minute,
		HorizonDays:        60,
		MaxPending:         7,
		MaxConsecutiveDays: 3,
	}
}

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func ts(day, hour, min int) time.Time {
	return time.Date(2026, time.June, day, hour, min, 0, 0, time.UTC)
}

type reservationFixture struct {
	repo        *mocks.MockReservationRepo
	vehicleRepo *mocks.MockVehicleRepo
	memberRepo  *mocks.MockMemberRepo
	notifier    *mocks.MockNotifier
	slotEvents  *mocks.MockSlotEvents
	svc         *ReservationService
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		repo:        mocks.NewMockReservationRepo(t),
		vehicleRepo: mocks.NewMockVehicleRepo(t),
		memberRepo:  mocks.NewMockMemberRepo(t),
		notifier:    mocks.NewMockNotifier(t),
		slotEvents:  mocks.NewMockSlotEvents(t),
	}
	f.svc = NewReservationService(
		f.repo, f.vehicleRepo, f.memberRepo, f.notifier, f.slotEvents, nil,
		testRules(), newTestLogger(t),
	)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *reservationFixture) lockPassesThrough(store ports.AdmissionStore) {
	f.repo.EXPECT().InVehicleLock(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, _ time.Time, fn func(ports.AdmissionStore) error) error {
			return fn(store)
		})
}

func activeVehicle() *domain.Vehicle {
	return &domain.Vehicle{ID: "v1", Name: "Chinook", Type: domain.VehicleTypeBoat, Active: true}
}

func activeMember() *domain.Member {
	return &domain.Member{
		ID: "m1", Username: "alice", FullName: "Alice Hall", Email: "alice@example.com",
		Active: true, MaxPending: 7, MaxConsecutiveDays: 3,
	}
}

func TestReservationService_Reserve_Succeeds(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.lockPassesThrough(store)

	f.notifier.EXPECT().NotifyReserved(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	res, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, res.Status)
	assert.Equal(t, "v1", res.VehicleID)
	assert.Equal(t, "m1", res.MemberID)
	assert.NotEmpty(t, res.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_AbuttingBookingAllowed(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return([]domain.Occupancy{
		{Start: ts(10, 8, 0), End: ts(10, 10, 0), Kind: domain.OccupancyReservation, HolderID: "m2"},
	}, nil)
	store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.lockPassesThrough(store)

	f.notifier.EXPECT().NotifyReserved(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_OverlapConflict(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)

	taken := domain.Occupancy{Start: ts(10, 10, 0), End: ts(10, 13, 0), Kind: domain.OccupancyReservation, HolderID: "m2"}
	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return([]domain.Occupancy{taken}, nil)
	f.lockPassesThrough(store)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 11, 0), EndTime: ts(10, 14, 0),
	})

	var conflict *domain.OverlapConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, taken, conflict.Conflicts[0])
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReservationService_Reserve_Validation(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"end before start", ts(10, 12, 0), ts(10, 10, 0)},
		{"too short", ts(10, 10, 0), ts(10, 11, 30)},
		{"too long", ts(10, 10, 0), ts(10, 16, 30)},
		{"off the booking grid", ts(10, 10, 15), ts(10, 12, 15)},
		{"in the past", ts(1, 8, 0).AddDate(0, 0, -2), ts(1, 10, 0).AddDate(0, 0, -2)},
		{"beyond the horizon", ts(10, 10, 0).AddDate(0, 3, 0), ts(10, 12, 0).AddDate(0, 3, 0)},
		{"before opening", ts(10, 4, 0), ts(10, 8, 0)},
		{"past closing", ts(10, 17, 0), ts(10, 21, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFixture(t)
			f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
			f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)

			_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
				VehicleID: "v1", MemberID: "m1",
				StartTime: tt.start, EndTime: tt.end,
			})

			require.ErrorIs(t, err, domain.ErrValidation)
			f.repo.AssertNotCalled(t, "InVehicleLock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_Reserve_MaxPendingLimit(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(7, nil)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	var limitErr *domain.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, domain.LimitMaxPending, limitErr.Limit)
	assert.Equal(t, 7, limitErr.Current)
}

func TestReservationService_Reserve_ConsecutiveDaysLimit(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(3, nil)
	// Days 8, 9 and 11 held: booking the 10th closes a 4-day run.
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return([]time.Time{
		ts(8, 0, 0), ts(9, 0, 0), ts(11, 0, 0),
	}, nil)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	var limitErr *domain.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, domain.LimitMaxConsecutiveDays, limitErr.Limit)
	assert.Equal(t, 4, limitErr.Current)
	assert.Equal(t, 3, limitErr.Max)
}

func TestReservationService_Reserve_ConsecutiveDaysAtLimitAllowed(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(2, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return([]time.Time{
		ts(8, 0, 0), ts(9, 0, 0),
	}, nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.lockPassesThrough(store)

	f.notifier.EXPECT().NotifyReserved(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_ForcePending(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.lockPassesThrough(store)

	f.notifier.EXPECT().NotifyPendingApproval(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	res, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		ForcePending: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingApproval, res.Status)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_MemberRequiresApproval(t *testing.T) {
	f := newReservationFixture(t)

	member := activeMember()
	member.RequiresApproval = true

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.lockPassesThrough(store)

	f.notifier.EXPECT().NotifyPendingApproval(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	res, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingApproval, res.Status)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_InactiveVehicle(t *testing.T) {
	f := newReservationFixture(t)

	vehicle := activeVehicle()
	vehicle.Active = false
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	assert.ErrorIs(t, err, domain.ErrVehicleInactive)
}

func TestReservationService_Reserve_InactiveMember(t *testing.T) {
	f := newReservationFixture(t)

	member := activeMember()
	member.Active = false
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	assert.ErrorIs(t, err, domain.ErrMemberInactive)
}

func TestReservationService_Reserve_LockTimeout(t *testing.T) {
	f := newReservationFixture(t)

	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.repo.EXPECT().CountActiveOrPending(mock.Anything, "m1", mock.Anything).Return(0, nil)
	f.repo.EXPECT().MemberDays(mock.Anything, "m1", mock.Anything).Return(nil, nil)
	f.repo.EXPECT().InVehicleLock(mock.Anything, "v1", mock.Anything, mock.Anything).Return(domain.ErrLockTimeout)

	_, err := f.svc.Reserve(context.Background(), domain.ReserveInput{
		VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
	})

	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestReservationService_Cancel_Succeeds(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusActive,
	}
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().UpdateStatus(mock.Anything, "r1", domain.OccupyingStatuses, domain.StatusCancelled, mock.Anything).Return(true, nil)
	f.lockPassesThrough(store)

	f.slotEvents.EXPECT().SlotOpened(mock.Anything, "v1", ts(10, 0, 0)).Return()
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	got, cancelled, err := f.svc.Cancel(context.Background(), "r1", "m1")

	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_Idempotent(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusCancelled,
	}
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)

	got, cancelled, err := f.svc.Cancel(context.Background(), "r1", "m1")

	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	f.repo.AssertNotCalled(t, "InVehicleLock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.slotEvents.AssertNotCalled(t, "SlotOpened", mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_Cancel_LostRace(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusActive,
	}
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)

	// Someone else cancelled between the read and the guarded update.
	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().UpdateStatus(mock.Anything, "r1", domain.OccupyingStatuses, domain.StatusCancelled, mock.Anything).Return(false, nil)
	f.lockPassesThrough(store)

	got, cancelled, err := f.svc.Cancel(context.Background(), "r1", "m1")

	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	f.slotEvents.AssertNotCalled(t, "SlotOpened", mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusActive,
	}
	stranger := &domain.Member{ID: "m2", Username: "bob", Active: true}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m2").Return(stranger, nil)

	_, _, err := f.svc.Cancel(context.Background(), "r1", "m2")

	assert.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestReservationService_Cancel_AdminOverride(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusActive,
	}
	admin := &domain.Member{ID: "m9", Username: "root", IsAdmin: true, Active: true}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(admin, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)

	store := mocks.NewMockAdmissionStore(t)
	store.EXPECT().UpdateStatus(mock.Anything, "r1", domain.OccupyingStatuses, domain.StatusCancelled, mock.Anything).Return(true, nil)
	f.lockPassesThrough(store)

	f.slotEvents.EXPECT().SlotOpened(mock.Anything, "v1", ts(10, 0, 0)).Return()
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, cancelled, err := f.svc.Cancel(context.Background(), "r1", "m9")

	require.NoError(t, err)
	assert.True(t, cancelled)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_Succeeds(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusPendingApproval,
	}
	admin := &domain.Member{ID: "m9", Username: "root", IsAdmin: true, Active: true}

	f.memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(admin, nil)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.repo.EXPECT().UpdateStatus(mock.Anything, "r1",
		[]domain.ReservationStatus{domain.StatusPendingApproval}, domain.StatusActive, mock.Anything).Return(true, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.notifier.EXPECT().NotifyApproved(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := f.svc.Approve(context.Background(), "r1", "m9")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_NotAdmin(t *testing.T) {
	f := newReservationFixture(t)

	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)

	_, err := f.svc.Approve(context.Background(), "r1", "m1")

	assert.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestReservationService_Approve_NotPending(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusActive,
	}
	admin := &domain.Member{ID: "m9", Username: "root", IsAdmin: true, Active: true}

	f.memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(admin, nil)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := f.svc.Approve(context.Background(), "r1", "m9")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Reject_FreesSlot(t *testing.T) {
	f := newReservationFixture(t)

	res := &domain.Reservation{
		ID: "r1", VehicleID: "v1", MemberID: "m1",
		StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
		Status: domain.StatusPendingApproval,
	}
	admin := &domain.Member{ID: "m9", Username: "root", IsAdmin: true, Active: true}

	f.memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(admin, nil)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.repo.EXPECT().UpdateStatus(mock.Anything, "r1",
		[]domain.ReservationStatus{domain.StatusPendingApproval}, domain.StatusCancelled, mock.Anything).Return(true, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)

	f.slotEvents.EXPECT().SlotOpened(mock.Anything, "v1", ts(10, 0, 0)).Return()
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := f.svc.Reject(context.Background(), "r1", "m9")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_RemindUpcoming(t *testing.T) {
	f := newReservationFixture(t)

	reminded := []*domain.Reservation{
		{ID: "r1", VehicleID: "v1", MemberID: "m1", StartTime: ts(2, 10, 0), EndTime: ts(2, 12, 0), Status: domain.StatusActive},
	}
	f.repo.EXPECT().MarkReminded(mock.Anything, domain.Interval{
		Start: ts(2, 0, 0), End: ts(3, 0, 0),
	}).Return(reminded, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)
	f.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	f.notifier.EXPECT().NotifyTripReminder(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := f.svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
}

// fakeAdmissionRepo serializes admissions with a real mutex so concurrent
// Reserve calls exercise the check-then-insert race the lock exists for.
type fakeAdmissionRepo struct {
	mu       sync.Mutex
	inserted []*domain.Reservation
}

type fakeAdmissionStore struct {
	repo *fakeAdmissionRepo
}

func (f *fakeAdmissionRepo) InVehicleLock(ctx context.Context, vehicleID string, day time.Time, fn func(ports.AdmissionStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(&fakeAdmissionStore{repo: f})
}

func (s *fakeAdmissionStore) Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error) {
	var out []domain.Occupancy
	for _, r := range s.repo.inserted {
		if r.VehicleID == vehicleID && r.Interval().Overlaps(window) {
			out = append(out, domain.Occupancy{
				Start: r.StartTime, End: r.EndTime,
				Kind: domain.OccupancyReservation, HolderID: r.MemberID,
			})
		}
	}
	return out, nil
}

func (s *fakeAdmissionStore) Insert(ctx context.Context, r *domain.Reservation) error {
	s.repo.inserted = append(s.repo.inserted, r)
	return nil
}

func (s *fakeAdmissionStore) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error) {
	return false, nil
}

func (f *fakeAdmissionRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return nil, domain.ErrReservationNotFound
}

func (f *fakeAdmissionRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeAdmissionRepo) ListByMember(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeAdmissionRepo) Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeAdmissionStore{repo: f}).Occupying(ctx, vehicleID, window)
}

func (f *fakeAdmissionRepo) CountActiveOrPending(ctx context.Context, memberID string, ref time.Time) (int, error) {
	return 0, nil
}

func (f *fakeAdmissionRepo) MemberDays(ctx context.Context, memberID string, ref time.Time) ([]time.Time, error) {
	return nil, nil
}

func (f *fakeAdmissionRepo) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error) {
	return false, nil
}

func (f *fakeAdmissionRepo) MarkReminded(ctx context.Context, window domain.Interval) ([]*domain.Reservation, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyReserved(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation) {
}
func (noopNotifier) NotifyPendingApproval(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation) {
}
func (noopNotifier) NotifyApproved(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation) {
}
func (noopNotifier) NotifyCancelled(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation) {
}
func (noopNotifier) NotifyTripReminder(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation) {
}
func (noopNotifier) NotifyWaitlistOpening(context.Context, *domain.Member, string, time.Time) {}

func TestReservationService_Reserve_ConcurrentAdmissions(t *testing.T) {
	repo := &fakeAdmissionRepo{}

	vehicleRepo := mocks.NewMockVehicleRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)
	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	memberRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.Member, error) {
			m := activeMember()
			m.ID = id
			return m, nil
		})

	svc := NewReservationService(
		repo, vehicleRepo, memberRepo, noopNotifier{}, mocks.NewMockSlotEvents(t), nil,
		testRules(), newTestLogger(t),
	)
	svc.now = func() time.Time { return testNow }

	const workers = 10
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), domain.ReserveInput{
				VehicleID: "v1",
				MemberID:  "m" + string(rune('0'+i)),
				StartTime: ts(10, 10, 0), EndTime: ts(10, 12, 0),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		var conflict *domain.OverlapConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, repo.inserted, 1)
}
