package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"slipway/internal/domain"
	"slipway/internal/service/ports"
)

// ReservationService is the admission engine: it decides atomically whether a
// reservation may be created, and owns cancellation and the approval flow.
type ReservationService struct {
	repo        ports.ReservationRepo
	vehicleRepo ports.VehicleRepo
	memberRepo  ports.MemberRepo
	notifier    ports.Notifier
	slotEvents  ports.SlotEvents
	cache       ports.AvailabilityCache
	rules       Rules
	logger      logger.Logger

	now func() time.Time
}

func NewReservationService(
	repo ports.ReservationRepo,
	vehicleRepo ports.VehicleRepo,
	memberRepo ports.MemberRepo,
	notifier ports.Notifier,
	slotEvents ports.SlotEvents,
	cache ports.AvailabilityCache,
	rules Rules,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		memberRepo:  memberRepo,
		notifier:    notifier,
		slotEvents:  slotEvents,
		cache:       cache,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// Reserve validates the request, checks the member's limits, and admits the
// reservation under the vehicle's exclusive section. On conflict the colliding
// occupancies are returned inside an OverlapConflictError.
func (s *ReservationService) Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Reservation, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if !vehicle.Active {
		return nil, domain.ErrVehicleInactive
	}

	member, err := s.memberRepo.GetByID(ctx, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if !member.Active {
		return nil, domain.ErrMemberInactive
	}

	now := s.now()
	if err = s.validateWindow(now, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if err = s.checkLimits(ctx, member, now, in.StartTime); err != nil {
		return nil, err
	}

	status := domain.StatusActive
	if in.ForcePending || member.RequiresApproval {
		status = domain.StatusPendingApproval
	}

	res := &domain.Reservation{
		ID:        uuid.New().String(),
		VehicleID: in.VehicleID,
		MemberID:  in.MemberID,
		StartTime: in.StartTime.UTC(),
		EndTime:   in.EndTime.UTC(),
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now.UTC(),
	}

	day := s.rules.Day(in.StartTime)
	err = s.repo.InVehicleLock(ctx, in.VehicleID, day, func(tx ports.AdmissionStore) error {
		occupied, err := tx.Occupying(ctx, in.VehicleID, res.Interval())
		if err != nil {
			return fmt.Errorf("list occupancies: %w", err)
		}

		var conflicts []domain.Occupancy
		for _, o := range occupied {
			if o.Interval().Overlaps(res.Interval()) {
				conflicts = append(conflicts, o)
			}
		}
		if len(conflicts) > 0 {
			return &domain.OverlapConflictError{Requested: res.Interval(), Conflicts: conflicts}
		}

		return tx.Insert(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDay(ctx, in.VehicleID, day)

	s.logger.Info("reservation admitted",
		logger.String("reservation_id", res.ID),
		logger.String("vehicle_id", res.VehicleID),
		logger.String("member_id", res.MemberID),
		logger.String("status", string(res.Status)),
	)

	if status == domain.StatusPendingApproval {
		go s.notifier.NotifyPendingApproval(context.WithoutCancel(ctx), member, vehicle, res)
	} else {
		go s.notifier.NotifyReserved(context.WithoutCancel(ctx), member, vehicle, res)
	}

	return res, nil
}

func (s *ReservationService) validateWindow(now time.Time, start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}

	dur := end.Sub(start)
	if dur < s.rules.MinDuration {
		return fmt.Errorf("%w: minimum reservation length is %s (requested %s)",
			domain.ErrValidation, s.rules.MinDuration, dur)
	}
	if dur > s.rules.MaxDuration {
		return fmt.Errorf("%w: maximum reservation length is %s (requested %s)",
			domain.ErrValidation, s.rules.MaxDuration, dur)
	}

	window := s.rules.OperatingWindow(start)
	if start.Sub(window.Start)%s.rules.Granularity != 0 || end.Sub(window.Start)%s.rules.Granularity != 0 {
		return fmt.Errorf("%w: times must align to the %s booking grid", domain.ErrValidation, s.rules.Granularity)
	}

	if start.Before(now) {
		return fmt.Errorf("%w: start time cannot be in the past", domain.ErrValidation)
	}
	horizon := s.rules.Day(now).AddDate(0, 0, s.rules.HorizonDays+1)
	if !start.Before(horizon) {
		return fmt.Errorf("%w: reservations may be made at most %d days ahead", domain.ErrValidation, s.rules.HorizonDays)
	}

	if start.Before(window.Start) || end.After(window.End) {
		return fmt.Errorf("%w: reservation must fall within operating hours (%s to %s local)",
			domain.ErrValidation,
			window.Start.In(s.rules.Loc).Format("15:04"),
			window.End.In(s.rules.Loc).Format("15:04"),
		)
	}

	return nil
}

func (s *ReservationService) checkLimits(ctx context.Context, member *domain.Member, now, start time.Time) error {
	count, err := s.repo.CountActiveOrPending(ctx, member.ID, now)
	if err != nil {
		return fmt.Errorf("count pending: %w", err)
	}
	if count >= member.MaxPending {
		return &domain.LimitError{Limit: domain.LimitMaxPending, Current: count, Max: member.MaxPending}
	}

	rawDays, err := s.repo.MemberDays(ctx, member.ID, now)
	if err != nil {
		return fmt.Errorf("list member days: %w", err)
	}
	days := make([]time.Time, 0, len(rawDays))
	for _, d := range rawDays {
		days = append(days, s.asLocalDay(d))
	}

	run := domain.ConsecutiveRun(days, s.rules.Day(start))
	if run > member.MaxConsecutiveDays {
		return &domain.LimitError{Limit: domain.LimitMaxConsecutiveDays, Current: run, Max: member.MaxConsecutiveDays}
	}

	return nil
}

// asLocalDay rebuilds a stored calendar date as local midnight. Postgres date
// columns scan as midnight UTC, which is not the club's midnight.
func (s *ReservationService) asLocalDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.rules.Loc)
}

// Cancel transitions an active or pending reservation to cancelled. It is
// idempotent: cancelling twice reports alreadyCancelled without a state
// change. The first successful cancellation emits a slot-opened event.
func (s *ReservationService) Cancel(ctx context.Context, id, actorID string) (res *domain.Reservation, cancelled bool, err error) {
	res, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("get reservation: %w", err)
	}

	actor, err := s.memberRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, false, fmt.Errorf("check actor: %w", err)
	}
	if !actor.IsAdmin && actor.ID != res.MemberID {
		return nil, false, domain.ErrNotAllowed
	}

	if res.Status == domain.StatusCancelled {
		return res, false, nil
	}

	now := s.now().UTC()
	day := s.rules.Day(res.StartTime)

	// Cancellation takes the same per-(vehicle, day) lock as admission so a
	// concurrent overlapping admission serializes against the freed slot.
	err = s.repo.InVehicleLock(ctx, res.VehicleID, day, func(tx ports.AdmissionStore) error {
		changed, err := tx.UpdateStatus(ctx, id, domain.OccupyingStatuses, domain.StatusCancelled, now)
		if err != nil {
			return fmt.Errorf("cancel reservation: %w", err)
		}
		if !changed {
			return domain.ErrAlreadyCancelled
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyCancelled) {
		res.Status = domain.StatusCancelled
		return res, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	res.Status = domain.StatusCancelled
	res.CancelledAt = &now

	s.invalidateDay(ctx, res.VehicleID, day)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("vehicle_id", res.VehicleID),
		logger.String("actor_id", actorID),
	)

	s.slotEvents.SlotOpened(ctx, res.VehicleID, day)

	go s.notifyStatusChange(context.WithoutCancel(ctx), res, s.notifier.NotifyCancelled)

	return res, true, nil
}

// Approve transitions a pending reservation to active. Admission already
// reserved the slot, so no overlap re-check is needed here.
func (s *ReservationService) Approve(ctx context.Context, id, actorID string) (*domain.Reservation, error) {
	res, err := s.transitionPending(ctx, id, actorID, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	go s.notifyStatusChange(context.WithoutCancel(ctx), res, s.notifier.NotifyApproved)
	return res, nil
}

// Reject transitions a pending reservation to cancelled and frees its slot.
func (s *ReservationService) Reject(ctx context.Context, id, actorID string) (*domain.Reservation, error) {
	res, err := s.transitionPending(ctx, id, actorID, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	day := s.rules.Day(res.StartTime)
	s.invalidateDay(ctx, res.VehicleID, day)
	s.slotEvents.SlotOpened(ctx, res.VehicleID, day)

	go s.notifyStatusChange(context.WithoutCancel(ctx), res, s.notifier.NotifyCancelled)
	return res, nil
}

func (s *ReservationService) transitionPending(ctx context.Context, id, actorID string, to domain.ReservationStatus) (*domain.Reservation, error) {
	actor, err := s.memberRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check actor: %w", err)
	}
	if !actor.IsAdmin {
		return nil, domain.ErrNotAllowed
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !res.Status.CanTransition(to) || res.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, res.Status, to)
	}

	now := s.now().UTC()
	changed, err := s.repo.UpdateStatus(ctx, id, []domain.ReservationStatus{domain.StatusPendingApproval}, to, now)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !changed {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, res.Status, to)
	}

	res.Status = to
	if to == domain.StatusCancelled {
		res.CancelledAt = &now
	}

	s.logger.Info("pending reservation resolved",
		logger.String("reservation_id", res.ID),
		logger.String("status", string(to)),
		logger.String("actor_id", actorID),
	)

	return res, nil
}

func (s *ReservationService) notifyStatusChange(
	ctx context.Context,
	res *domain.Reservation,
	notify func(context.Context, *domain.Member, *domain.Vehicle, *domain.Reservation),
) {
	member, err := s.memberRepo.GetByID(ctx, res.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", res.MemberID),
			logger.String("error", err.Error()),
		)
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, res.VehicleID)
	if err != nil {
		s.logger.Error("failed to get vehicle for notification",
			logger.String("vehicle_id", res.VehicleID),
			logger.String("error", err.Error()),
		)
		return
	}
	notify(ctx, member, vehicle, res)
}

func (s *ReservationService) invalidateDay(ctx context.Context, vehicleID string, day time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, vehicleID, day); err != nil {
		s.logger.Warn("availability cache invalidate failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: range end must be after range start", domain.ErrValidation)
	}
	return s.repo.ListRange(ctx, from, to)
}

func (s *ReservationService) ListByMember(ctx context.Context, memberID string) ([]*domain.Reservation, error) {
	return s.repo.ListByMember(ctx, memberID)
}

// RemindUpcoming flags tomorrow's reservations as reminded and notifies the
// holders. Called periodically by the scheduler; the guarded UPDATE makes
// repeat ticks no-ops.
func (s *ReservationService) RemindUpcoming(ctx context.Context) ([]*domain.Reservation, error) {
	tomorrow := s.rules.Day(s.now()).AddDate(0, 0, 1)
	window := domain.Interval{Start: tomorrow, End: tomorrow.AddDate(0, 0, 1)}

	reminded, err := s.repo.MarkReminded(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}

	if len(reminded) > 0 {
		s.logger.Info("trip reminders queued",
			logger.Int("count", len(reminded)),
		)
		go func(ctx context.Context) {
			for _, r := range reminded {
				s.notifyStatusChange(ctx, r, s.notifier.NotifyTripReminder)
			}
		}(context.WithoutCancel(ctx))
	}

	return reminded, nil
}
