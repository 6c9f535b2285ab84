package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slipway/internal/domain"
	"slipway/internal/service/ports/mocks"
)

func adminMember() *domain.Member {
	return &domain.Member{ID: "m9", Username: "root", IsAdmin: true, Active: true}
}

func TestVehicleService_Create_Succeeds(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(adminMember(), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	svc := NewVehicleService(repo, mocks.NewMockBlackoutRepo(t), memberRepo)

	vehicle, err := svc.Create(context.Background(), "m9", domain.CreateVehicleInput{
		Name: "Piper Cub", Type: domain.VehicleTypePlane,
	})

	require.NoError(t, err)
	assert.Equal(t, "Piper Cub", vehicle.Name)
	assert.True(t, vehicle.Active)
	assert.NotEmpty(t, vehicle.ID)
}

func TestVehicleService_Create_RequiresAdmin(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(activeMember(), nil)

	svc := NewVehicleService(repo, mocks.NewMockBlackoutRepo(t), memberRepo)

	_, err := svc.Create(context.Background(), "m1", domain.CreateVehicleInput{
		Name: "Piper Cub", Type: domain.VehicleTypePlane,
	})

	assert.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestVehicleService_Create_InvalidType(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(adminMember(), nil)

	svc := NewVehicleService(repo, mocks.NewMockBlackoutRepo(t), memberRepo)

	_, err := svc.Create(context.Background(), "m9", domain.CreateVehicleInput{
		Name: "Zeppelin", Type: domain.VehicleType("airship"),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_SetActive(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(adminMember(), nil)
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(activeVehicle(), nil)
	repo.EXPECT().SetActive(mock.Anything, "v1", false).Return(nil)

	svc := NewVehicleService(repo, mocks.NewMockBlackoutRepo(t), memberRepo)

	err := svc.SetActive(context.Background(), "m9", "v1", false)

	require.NoError(t, err)
}

func TestVehicleService_CreateBlackout_FleetWide(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(adminMember(), nil)
	blackoutRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	svc := NewVehicleService(repo, blackoutRepo, memberRepo)

	blackout, err := svc.CreateBlackout(context.Background(), "m9", domain.CreateBlackoutInput{
		StartTime: ts(10, 9, 0), EndTime: ts(10, 17, 0), Reason: "regatta",
	})

	require.NoError(t, err)
	assert.Nil(t, blackout.VehicleID)
	assert.Equal(t, "regatta", blackout.Reason)
	// No vehicle lookup for a fleet-wide blackout.
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestVehicleService_CreateBlackout_InvalidWindow(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	memberRepo.EXPECT().GetByID(mock.Anything, "m9").Return(adminMember(), nil)

	svc := NewVehicleService(repo, blackoutRepo, memberRepo)

	_, err := svc.CreateBlackout(context.Background(), "m9", domain.CreateBlackoutInput{
		StartTime: ts(10, 17, 0), EndTime: ts(10, 9, 0),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
