package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
)

type tripReminder interface {
	RemindUpcoming(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler runs the trip-reminder sweep on a fixed interval. The sweep is
// idempotent, so the interval only controls reminder latency.
type Scheduler struct {
	reservations tripReminder
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations tripReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.reservations.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send trip reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reminded {
		s.logger.Info("trip reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("member_id", r.MemberID),
			logger.String("vehicle_id", r.VehicleID),
		)
	}
}
