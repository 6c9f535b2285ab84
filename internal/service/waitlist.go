package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

type dayAvailability interface {
	Day(ctx context.Context, vehicleID string, day time.Time, minDur time.Duration) (*domain.DayAvailability, error)
}

// WaitlistService records interest in fully booked days and consumes
// slot-opened events from the engine. Promotion only flags entries and sends
// outreach; it never books on the member's behalf.
type WaitlistService struct {
	repo         ports.WaitlistRepo
	memberRepo   ports.MemberRepo
	vehicleRepo  ports.VehicleRepo
	availability dayAvailability
	notifier     ports.Notifier
	rules        Rules
	logger       logger.Logger
}

func NewWaitlistService(
	repo ports.WaitlistRepo,
	memberRepo ports.MemberRepo,
	vehicleRepo ports.VehicleRepo,
	availability dayAvailability,
	notifier ports.Notifier,
	rules Rules,
	logger logger.Logger,
) *WaitlistService {
	return &WaitlistService{
		repo:         repo,
		memberRepo:   memberRepo,
		vehicleRepo:  vehicleRepo,
		availability: availability,
		notifier:     notifier,
		rules:        rules,
		logger:       logger,
	}
}

func (s *WaitlistService) Join(ctx context.Context, in domain.JoinWaitlistInput) (*domain.WaitlistEntry, error) {
	member, err := s.memberRepo.GetByID(ctx, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if !member.Active {
		return nil, domain.ErrMemberInactive
	}
	if _, err = s.vehicleRepo.GetByID(ctx, in.VehicleID); err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}

	entry := &domain.WaitlistEntry{
		ID:        uuid.New().String(),
		MemberID:  in.MemberID,
		VehicleID: in.VehicleID,
		Day:       s.rules.Day(in.Day),
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry created",
		logger.String("member_id", in.MemberID),
		logger.String("vehicle_id", in.VehicleID),
		logger.String("day", entry.Day.Format("2006-01-02")),
	)

	return entry, nil
}

func (s *WaitlistService) ListByVehicleDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.WaitlistEntry, error) {
	return s.repo.ListByVehicleDay(ctx, vehicleID, s.rules.Day(day))
}

// SlotOpened implements ports.SlotEvents. It checks that the freed day now
// has a qualifying gap, claims the un-notified entries, and reaches out to
// each member. Duplicate events are tolerated: a second claim finds nothing.
func (s *WaitlistService) SlotOpened(ctx context.Context, vehicleID string, day time.Time) {
	avail, err := s.availability.Day(ctx, vehicleID, day, 0)
	if err != nil {
		s.logger.Error("slot opened: availability check failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
		return
	}
	if avail.FullyBooked {
		return
	}

	entries, err := s.repo.ClaimUnnotified(ctx, vehicleID, s.rules.Day(day))
	if err != nil {
		s.logger.Error("slot opened: claiming waitlist entries failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
		return
	}
	if len(entries) == 0 {
		return
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("slot opened: vehicle lookup failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("waitlist entries promoted",
		logger.String("vehicle_id", vehicleID),
		logger.String("day", s.rules.Day(day).Format("2006-01-02")),
		logger.Int("count", len(entries)),
	)

	for _, e := range entries {
		member, err := s.memberRepo.GetByID(ctx, e.MemberID)
		if err != nil {
			s.logger.Error("slot opened: member lookup failed",
				logger.String("member_id", e.MemberID),
			)
			continue
		}
		s.notifier.NotifyWaitlistOpening(ctx, member, vehicle.Name, e.Day)
	}
}
