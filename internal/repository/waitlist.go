package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"slipway/internal/domain"
)

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *domain.WaitlistEntry) error {
	query := `INSERT INTO waitlist_entries (id, member_id, vehicle_id, day, notified, created_at)
			  VALUES ($1, $2, $3, $4, FALSE, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, e.MemberID, e.VehicleID, e.Day.Format("2006-01-02"), e.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyWaitlisted
		}
		return fmt.Errorf("insert waitlist entry: %w", err)
	}
	return nil
}

// ClaimUnnotified flips the notified flag and returns only the rows this call
// flipped, so concurrent or repeated slot-opened events cannot double-claim.
func (r *WaitlistRepository) ClaimUnnotified(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error) {
	query := `UPDATE waitlist_entries
			  SET notified = TRUE
			  WHERE vehicle_id = $1 AND day = $2 AND notified = FALSE
			  RETURNING id, member_id, vehicle_id, day, notified, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, vehicleID, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("claim waitlist entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err = rows.Scan(&e.ID, &e.MemberID, &e.VehicleID, &e.Day, &e.Notified, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}

func (r *WaitlistRepository) ListByVehicleDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error) {
	query := `SELECT id, member_id, vehicle_id, day, notified, created_at
			  FROM waitlist_entries
			  WHERE vehicle_id = $1 AND day = $2
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, vehicleID, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list waitlist entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err = rows.Scan(&e.ID, &e.MemberID, &e.VehicleID, &e.Day, &e.Notified, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}
