package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

// Postgres error codes worth special-casing.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgLockNotAvailable   = "55P03"
)

type ReservationRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	tz          string
	lockTimeout time.Duration
}

func NewReservationRepo(db *dbpg.DB, tz string, lockTimeout time.Duration) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		tz:          tz,
		lockTimeout: lockTimeout,
	}
}

// InVehicleLock serializes admission and cancellation per (vehicle, day) with
// a transaction-scoped advisory lock. Unrelated vehicles and dates never wait
// on each other, and the lock drops on commit or rollback on every path.
func (r *ReservationRepository) InVehicleLock(ctx context.Context, vehicleID string, day time.Time, fn func(ports.AdmissionStore) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// lock_timeout bounds the advisory lock wait so contention surfaces as a
	// retryable error instead of a stuck request.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}

	key := vehicleID + ":" + day.Format("2006-01-02")
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return domain.ErrLockTimeout
		}
		return fmt.Errorf("acquire vehicle lock: %w", err)
	}

	if err = fn(&admissionTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

// admissionTx is the lock-holding view handed to the engine.
type admissionTx struct {
	tx *sql.Tx
}

func (a *admissionTx) Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error) {
	rows, err := a.tx.QueryContext(ctx, occupyingSQL,
		vehicleID, pq.Array(domain.OccupyingStatuses), window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("list occupancies: %w", err)
	}
	return scanOccupancies(rows)
}

func (a *admissionTx) Insert(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, vehicle_id, member_id, start_time, end_time, status, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	_, err := a.tx.ExecContext(ctx, query,
		res.ID, res.VehicleID, res.MemberID,
		res.StartTime, res.EndTime, res.Status, res.Notes, res.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// The exclusion constraint is a backstop for the locked overlap
		// check; hitting it still reports a conflict, just without the
		// colliding rows.
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return &domain.OverlapConflictError{Requested: res.Interval()}
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (a *admissionTx) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error) {
	return updateStatus(ctx, a.tx, id, from, to, at)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updateStatus(ctx context.Context, db execer, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error) {
	query := `UPDATE reservations
			  SET status = $3,
			      updated_at = $4,
			      cancelled_at = CASE WHEN $3 = 'cancelled' THEN $4 ELSE cancelled_at END
			  WHERE id = $1 AND status = ANY($2)`
	res, err := db.ExecContext(ctx, query, id, pq.Array(from), to, at)
	if err != nil {
		return false, fmt.Errorf("update reservation status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reservation rows affected: %w", err)
	}
	return n > 0, nil
}

const occupyingSQL = `
	SELECT o.start_time, o.end_time, o.kind, o.holder_id, o.detail FROM (
		SELECT r.start_time, r.end_time, 'reservation' AS kind, r.member_id AS holder_id, m.full_name AS detail
		FROM reservations r
		JOIN members m ON m.id = r.member_id
		WHERE r.vehicle_id = $1 AND r.status = ANY($2)
		  AND r.start_time < $4 AND r.end_time > $3
		UNION ALL
		SELECT b.start_time, b.end_time, 'blackout' AS kind, '' AS holder_id, b.reason AS detail
		FROM blackouts b
		WHERE (b.vehicle_id = $1 OR b.vehicle_id IS NULL)
		  AND b.start_time < $4 AND b.end_time > $3
	) o
	ORDER BY o.start_time`

// Occupying is the lock-free variant used by the availability query; it may
// observe a slightly stale snapshot.
func (r *ReservationRepository) Occupying(ctx context.Context, vehicleID string, window domain.Interval) ([]domain.Occupancy, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, occupyingSQL,
		vehicleID, pq.Array(domain.OccupyingStatuses), window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("list occupancies: %w", err)
	}
	return scanOccupancies(rows)
}

func scanOccupancies(rows *sql.Rows) ([]domain.Occupancy, error) {
	defer rows.Close()

	var res []domain.Occupancy
	for rows.Next() {
		var o domain.Occupancy
		if err := rows.Scan(&o.Start, &o.End, &o.Kind, &o.HolderID, &o.Detail); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

const reservationColumns = `id, vehicle_id, member_id, start_time, end_time, status, notes, created_at, cancelled_at`

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(
		&res.ID, &res.VehicleID, &res.MemberID, &res.StartTime, &res.EndTime,
		&res.Status, &res.Notes, &res.CreatedAt, &res.CancelledAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = ANY($1) AND start_time < $3 AND end_time > $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(domain.OccupyingStatuses), from, to)
	if err != nil {
		return nil, fmt.Errorf("list reservations in range: %w", err)
	}
	return scanReservations(rows)
}

func (r *ReservationRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE member_id = $1
			  ORDER BY start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by member: %w", err)
	}
	return scanReservations(rows)
}

func (r *ReservationRepository) CountActiveOrPending(ctx context.Context, memberID string, ref time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM reservations
			  WHERE member_id = $1 AND status = ANY($2) AND start_time >= $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, memberID, pq.Array(domain.OccupyingStatuses), ref)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan pending count: %w", err)
	}
	return n, nil
}

func (r *ReservationRepository) MemberDays(ctx context.Context, memberID string, ref time.Time) ([]time.Time, error) {
	query := `SELECT DISTINCT (start_time AT TIME ZONE $2)::date AS day
			  FROM reservations
			  WHERE member_id = $1 AND status = ANY($3) AND start_time >= $4
			  ORDER BY day`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID, r.tz, pq.Array(domain.OccupyingStatuses), ref)
	if err != nil {
		return nil, fmt.Errorf("list member days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan member day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus, at time.Time) (bool, error) {
	return updateStatus(ctx, r.db.Master, id, from, to, at)
}

// MarkReminded flags active reservations starting inside window and returns
// the newly flagged rows, so repeated sweeps never remind twice.
func (r *ReservationRepository) MarkReminded(ctx context.Context, window domain.Interval) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET reminded_at = NOW()
			  WHERE status = 'active' AND reminded_at IS NULL
			    AND start_time >= $1 AND start_time < $2
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rec domain.Reservation
		if err := rows.Scan(
			&rec.ID, &rec.VehicleID, &rec.MemberID, &rec.StartTime, &rec.EndTime,
			&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rec)
	}
	return res, rows.Err()
}
