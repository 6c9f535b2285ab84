package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

// AvailabilityService computes the bookable gaps for a vehicle and date. It
// reads without the vehicle lock: the result is advisory and a slightly stale
// snapshot is acceptable, so snapshots are cached briefly in redis.
type AvailabilityService struct {
	resRepo     ports.ReservationRepo
	vehicleRepo ports.VehicleRepo
	cache       ports.AvailabilityCache
	rules       Rules
	logger      logger.Logger
}

func NewAvailabilityService(
	resRepo ports.ReservationRepo,
	vehicleRepo ports.VehicleRepo,
	cache ports.AvailabilityCache,
	rules Rules,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		resRepo:     resRepo,
		vehicleRepo: vehicleRepo,
		cache:       cache,
		rules:       rules,
		logger:      logger,
	}
}

// Day returns the free gaps of the vehicle's operating day, longest-first
// ordering not applied: gaps come back in time order. minDur filters the
// reported gaps; zero means the club minimum. FullyBooked is always judged
// against the club minimum, which is absolute regardless of vehicle type.
func (s *AvailabilityService) Day(ctx context.Context, vehicleID string, day time.Time, minDur time.Duration) (*domain.DayAvailability, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if minDur <= 0 {
		minDur = s.rules.MinDuration
	}

	day = s.rules.Day(day)

	avail, err := s.snapshot(ctx, vehicleID, day)
	if err != nil {
		return nil, err
	}

	if minDur == s.rules.MinDuration {
		filtered := *avail
		filtered.Gaps = filterGaps(avail.Gaps, minDur)
		return &filtered, nil
	}

	out := &domain.DayAvailability{
		VehicleID:   vehicleID,
		Day:         day,
		Gaps:        filterGaps(avail.Gaps, minDur),
		FullyBooked: avail.FullyBooked,
	}
	return out, nil
}

// snapshot returns the raw grid-aligned gaps for the day, from cache when
// fresh enough, otherwise recomputed by merging the occupied intervals and
// subtracting them from the operating window.
func (s *AvailabilityService) snapshot(ctx context.Context, vehicleID string, day time.Time) (*domain.DayAvailability, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, vehicleID, day)
		if err != nil {
			s.logger.Warn("availability cache read failed",
				logger.String("vehicle_id", vehicleID),
				logger.String("error", err.Error()),
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	window := s.rules.OperatingWindow(day)
	occupied, err := s.resRepo.Occupying(ctx, vehicleID, window)
	if err != nil {
		return nil, fmt.Errorf("list occupancies: %w", err)
	}

	intervals := make([]domain.Interval, 0, len(occupied))
	for _, o := range occupied {
		intervals = append(intervals, o.Interval())
	}

	gaps := domain.FreeGaps(window, intervals, s.rules.Granularity)
	avail := &domain.DayAvailability{
		VehicleID:   vehicleID,
		Day:         day,
		Gaps:        gaps,
		FullyBooked: domain.FullyBooked(gaps, s.rules.MinDuration),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, avail); err != nil {
			s.logger.Warn("availability cache write failed",
				logger.String("vehicle_id", vehicleID),
				logger.String("error", err.Error()),
			)
		}
	}

	return avail, nil
}

func filterGaps(gaps []domain.Interval, minDur time.Duration) []domain.Interval {
	out := make([]domain.Interval, 0, len(gaps))
	for _, g := range gaps {
		if g.Duration() >= minDur {
			out = append(out, g)
		}
	}
	return out
}
