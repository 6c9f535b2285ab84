package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"slipway/internal/domain"
)

type BlackoutRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBlackoutRepo(db *dbpg.DB) *BlackoutRepository {
	return &BlackoutRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *domain.Blackout) error {
	query := `INSERT INTO blackouts (id, vehicle_id, start_time, end_time, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, b.VehicleID, b.StartTime, b.EndTime, b.Reason, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert blackout: %w", err)
	}
	return nil
}

func (r *BlackoutRepository) ListUpcoming(ctx context.Context) ([]*domain.Blackout, error) {
	query := `SELECT id, vehicle_id, start_time, end_time, reason, created_at
			  FROM blackouts
			  WHERE end_time > NOW()
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Blackout
	for rows.Next() {
		var b domain.Blackout
		if err = rows.Scan(&b.ID, &b.VehicleID, &b.StartTime, &b.EndTime, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blackout: %w", err)
		}
		res = append(res, &b)
	}
	return res, rows.Err()
}
