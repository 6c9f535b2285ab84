package service

import (
	"fmt"
	"time"

	"slipway/internal/config"
	"slipway/internal/domain"
)

// Rules are the club's admission parameters. The operating day and the
// booking grid are defined in the club's local timezone; storage is UTC.
type Rules struct {
	Loc                *time.Location
	DayStart           time.Duration
	DayEnd             time.Duration
	MinDuration        time.Duration
	MaxDuration        time.Duration
	Granularity        time.Duration
	HorizonDays        int
	MaxPending         int
	MaxConsecutiveDays int
}

func RulesFromConfig(cfg config.BookingConfig) (Rules, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Rules{}, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	if cfg.DayEnd <= cfg.DayStart {
		return Rules{}, fmt.Errorf("day_end %s must be after day_start %s", cfg.DayEnd, cfg.DayStart)
	}
	return Rules{
		Loc:                loc,
		DayStart:           cfg.DayStart,
		DayEnd:             cfg.DayEnd,
		MinDuration:        cfg.MinDuration,
		MaxDuration:        cfg.MaxDuration,
		Granularity:        cfg.Granularity,
		HorizonDays:        cfg.HorizonDays,
		MaxPending:         cfg.MaxPending,
		MaxConsecutiveDays: cfg.MaxConsecutiveDays,
	}, nil
}

// Day truncates t to the club-local calendar date.
func (r Rules) Day(t time.Time) time.Time {
	return domain.DayOf(t, r.Loc)
}

// OperatingWindow is the bookable window for the calendar date containing
// day (any time on that local date works as input).
func (r Rules) OperatingWindow(day time.Time) domain.Interval {
	midnight := r.Day(day)
	return domain.Interval{
		Start: midnight.Add(r.DayStart),
		End:   midnight.Add(r.DayEnd),
	}
}
