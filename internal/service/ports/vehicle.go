package ports

import (
	"context"

	"slipway/internal/domain"
)

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type BlackoutRepo interface {
	Create(ctx context.Context, b *domain.Blackout) error
	ListUpcoming(ctx context.Context) ([]*domain.Blackout, error)
}
