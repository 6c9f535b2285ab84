package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

type VehicleService struct {
	repo         ports.VehicleRepo
	blackoutRepo ports.BlackoutRepo
	memberRepo   ports.MemberRepo
}

func NewVehicleService(repo ports.VehicleRepo, blackoutRepo ports.BlackoutRepo, memberRepo ports.MemberRepo) *VehicleService {
	return &VehicleService{
		repo:         repo,
		blackoutRepo: blackoutRepo,
		memberRepo:   memberRepo,
	}
}

func (s *VehicleService) Create(ctx context.Context, actorID string, input domain.CreateVehicleInput) (*domain.Vehicle, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: vehicle type must be boat or plane", domain.ErrValidation)
	}

	vehicle := &domain.Vehicle{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Type:      input.Type,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *VehicleService) SetActive(ctx context.Context, actorID, id string, active bool) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, active)
}

// CreateBlackout registers an administrator-defined occupied window. A nil
// vehicle id blacks out the whole fleet.
func (s *VehicleService) CreateBlackout(ctx context.Context, actorID string, input domain.CreateBlackoutInput) (*domain.Blackout, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: blackout end must be after start", domain.ErrValidation)
	}
	if input.VehicleID != nil {
		if _, err := s.repo.GetByID(ctx, *input.VehicleID); err != nil {
			return nil, fmt.Errorf("check vehicle: %w", err)
		}
	}

	blackout := &domain.Blackout{
		ID:        uuid.New().String(),
		VehicleID: input.VehicleID,
		StartTime: input.StartTime.UTC(),
		EndTime:   input.EndTime.UTC(),
		Reason:    input.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blackoutRepo.Create(ctx, blackout); err != nil {
		return nil, fmt.Errorf("create blackout: %w", err)
	}

	return blackout, nil
}

func (s *VehicleService) ListBlackouts(ctx context.Context) ([]*domain.Blackout, error) {
	return s.blackoutRepo.ListUpcoming(ctx)
}

func (s *VehicleService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.memberRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("check actor: %w", err)
	}
	if !actor.IsAdmin {
		return domain.ErrNotAllowed
	}
	return nil
}
