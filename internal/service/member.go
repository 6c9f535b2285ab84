package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

type MemberService struct {
	repo  ports.MemberRepo
	rules Rules
}

func NewMemberService(repo ports.MemberRepo, rules Rules) *MemberService {
	return &MemberService{repo: repo, rules: rules}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	maxPending := input.MaxPending
	if maxPending <= 0 {
		maxPending = s.rules.MaxPending
	}
	maxRun := input.MaxConsecutiveDays
	if maxRun <= 0 {
		maxRun = s.rules.MaxConsecutiveDays
	}

	member := &domain.Member{
		ID:                 uuid.New().String(),
		Username:           input.Username,
		FullName:           input.FullName,
		Email:              input.Email,
		TelegramChatID:     input.TelegramChatID,
		IsAdmin:            input.IsAdmin,
		RequiresApproval:   input.RequiresApproval,
		MaxPending:         maxPending,
		MaxConsecutiveDays: maxRun,
		Active:             true,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}

func (s *MemberService) Deactivate(ctx context.Context, actorID, id string) error {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("check actor: %w", err)
	}
	if !actor.IsAdmin {
		return domain.ErrNotAllowed
	}
	if _, err = s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *MemberService) UsageStats(ctx context.Context) ([]domain.MemberUsage, error) {
	return s.repo.UsageStats(ctx)
}
