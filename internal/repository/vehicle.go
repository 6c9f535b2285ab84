package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"slipway/internal/domain"
)

type VehicleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVehicleRepo(db *dbpg.DB) *VehicleRepository {
	return &VehicleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, name, type, active, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, v.ID, v.Name, v.Type, v.Active, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT id, name, type, active, created_at FROM vehicles WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	var v domain.Vehicle
	if err = row.Scan(&v.ID, &v.Name, &v.Type, &v.Active, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}

	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, name, type, active, created_at FROM vehicles ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err = rows.Scan(&v.ID, &v.Name, &v.Type, &v.Active, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *VehicleRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE vehicles SET active = $2 WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set vehicle active: %w", err)
	}
	return nil
}
