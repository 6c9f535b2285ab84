package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slipway/internal/domain"
	"slipway/internal/service/ports/mocks"
)

func TestAvailabilityService_Day_OpenDay(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	resRepo.EXPECT().Occupying(mock.Anything, "v1", domain.Interval{
		Start: ts(10, 6, 0), End: ts(10, 20, 0),
	}).Return(nil, nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, nil, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 0)

	require.NoError(t, err)
	assert.False(t, avail.FullyBooked)
	require.Len(t, avail.Gaps, 1)
	assert.Equal(t, domain.Interval{Start: ts(10, 6, 0), End: ts(10, 20, 0)}, avail.Gaps[0])
}

func TestAvailabilityService_Day_GapsAroundOccupancies(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	resRepo.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return([]domain.Occupancy{
		{Start: ts(10, 9, 0), End: ts(10, 12, 0), Kind: domain.OccupancyReservation, HolderID: "m2"},
		{Start: ts(10, 14, 0), End: ts(10, 17, 0), Kind: domain.OccupancyBlackout, Detail: "engine service"},
	}, nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, nil, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 0)

	require.NoError(t, err)
	assert.False(t, avail.FullyBooked)
	require.Len(t, avail.Gaps, 3)
	assert.Equal(t, domain.Interval{Start: ts(10, 6, 0), End: ts(10, 9, 0)}, avail.Gaps[0])
	assert.Equal(t, domain.Interval{Start: ts(10, 12, 0), End: ts(10, 14, 0)}, avail.Gaps[1])
	assert.Equal(t, domain.Interval{Start: ts(10, 17, 0), End: ts(10, 20, 0)}, avail.Gaps[2])
}

func TestAvailabilityService_Day_MinDurationFiltersButKeepsVerdict(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	// Leaves a 3h morning gap and a 2h evening gap.
	resRepo.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return([]domain.Occupancy{
		{Start: ts(10, 9, 0), End: ts(10, 18, 0), Kind: domain.OccupancyReservation, HolderID: "m2"},
	}, nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, nil, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 3*time.Hour)

	require.NoError(t, err)
	require.Len(t, avail.Gaps, 1)
	assert.Equal(t, domain.Interval{Start: ts(10, 6, 0), End: ts(10, 9, 0)}, avail.Gaps[0])
	// The 2h evening gap still fits the club minimum, so the day is not full.
	assert.False(t, avail.FullyBooked)
}

func TestAvailabilityService_Day_FullyBooked(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	// Only sub-minimum fragments remain.
	resRepo.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return([]domain.Occupancy{
		{Start: ts(10, 7, 0), End: ts(10, 13, 0), Kind: domain.OccupancyReservation, HolderID: "m2"},
		{Start: ts(10, 14, 0), End: ts(10, 20, 0), Kind: domain.OccupancyReservation, HolderID: "m3"},
	}, nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, nil, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 0)

	require.NoError(t, err)
	assert.True(t, avail.FullyBooked)
	assert.Empty(t, avail.Gaps)
}

func TestAvailabilityService_Day_CacheHitSkipsStore(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)
	availCache := mocks.NewMockAvailabilityCache(t)

	cached := &domain.DayAvailability{
		VehicleID: "v1",
		Day:       ts(10, 0, 0),
		Gaps:      []domain.Interval{{Start: ts(10, 6, 0), End: ts(10, 20, 0)}},
	}
	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	availCache.EXPECT().Get(mock.Anything, "v1", ts(10, 0, 0)).Return(cached, nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, availCache, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 0)

	require.NoError(t, err)
	assert.Equal(t, cached.Gaps, avail.Gaps)
	resRepo.AssertNotCalled(t, "Occupying", mock.Anything, mock.Anything, mock.Anything)
}

func TestAvailabilityService_Day_CacheMissComputesAndStores(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)
	availCache := mocks.NewMockAvailabilityCache(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	availCache.EXPECT().Get(mock.Anything, "v1", ts(10, 0, 0)).Return(nil, nil)
	resRepo.EXPECT().Occupying(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	availCache.EXPECT().Set(mock.Anything, mock.Anything).Return(nil)

	svc := NewAvailabilityService(resRepo, vehicleRepo, availCache, testRules(), newTestLogger(t))

	avail, err := svc.Day(context.Background(), "v1", ts(10, 0, 0), 0)

	require.NoError(t, err)
	require.Len(t, avail.Gaps, 1)
}

func TestAvailabilityService_Day_UnknownVehicle(t *testing.T) {
	resRepo := mocks.NewMockReservationRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrVehicleNotFound)

	svc := NewAvailabilityService(resRepo, vehicleRepo, nil, testRules(), newTestLogger(t))

	_, err := svc.Day(context.Background(), "nope", ts(10, 0, 0), 0)

	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}
