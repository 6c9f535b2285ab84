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
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const memberColumns = `id, username, full_name, email, telegram_chat_id, is_admin,
	requires_approval, max_pending, max_consecutive_days, active, created_at`

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (` + memberColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		m.ID, m.Username, m.FullName, m.Email, m.TelegramChatID, m.IsAdmin,
		m.RequiresApproval, m.MaxPending, m.MaxConsecutiveDays, m.Active, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	var m domain.Member
	if err = scanMember(row.Scan, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return &m, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE active = TRUE ORDER BY full_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err = scanMember(rows.Scan, &m); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

func scanMember(scan func(...any) error, m *domain.Member) error {
	return scan(
		&m.ID, &m.Username, &m.FullName, &m.Email, &m.TelegramChatID, &m.IsAdmin,
		&m.RequiresApproval, &m.MaxPending, &m.MaxConsecutiveDays, &m.Active, &m.CreatedAt,
	)
}

func (r *MemberRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE members SET active = FALSE WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate member: %w", err)
	}
	return nil
}

func (r *MemberRepository) UsageStats(ctx context.Context) ([]domain.MemberUsage, error) {
	query := `
		SELECT
			m.id,
			m.full_name,
			COUNT(*) FILTER (WHERE r.status = 'active' AND r.start_time < NOW())  AS past,
			COUNT(*) FILTER (WHERE r.status = 'active' AND r.start_time >= NOW()) AS upcoming,
			COUNT(*) FILTER (WHERE r.status IN ('active', 'pending_approval'))    AS total,
			COUNT(*) FILTER (WHERE r.status = 'cancelled')                        AS cancelled
		FROM members m
		LEFT JOIN reservations r ON r.member_id = m.id
		WHERE m.active = TRUE
		GROUP BY m.id, m.full_name
		ORDER BY total DESC, m.full_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("usage stats: %w", err)
	}
	defer rows.Close()

	var res []domain.MemberUsage
	for rows.Next() {
		var u domain.MemberUsage
		if err = rows.Scan(&u.MemberID, &u.FullName, &u.Past, &u.Upcoming, &u.Total, &u.Cancelled); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		res = append(res, u)
	}
	return res, rows.Err()
}
