package ports

import (
	"context"

	"slipway/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Deactivate(ctx context.Context, id string) error
	UsageStats(ctx context.Context) ([]domain.MemberUsage, error)
}
