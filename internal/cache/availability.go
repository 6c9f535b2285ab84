package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"slipway/internal/domain"
)

// Availability stores short-lived availability snapshots in redis. A miss or
// a decode failure just makes the caller recompute; nothing here is a source
// of truth.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	return &Availability{rdb: rdb, ttl: ttl}
}

func key(vehicleID string, day time.Time) string {
	return fmt.Sprintf("avail:%s:%s", vehicleID, day.Format("2006-01-02"))
}

func (a *Availability) Get(ctx context.Context, vehicleID string, day time.Time) (*domain.DayAvailability, error) {
	b, err := a.rdb.Get(ctx, key(vehicleID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var avail domain.DayAvailability
	if err := json.Unmarshal(b, &avail); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &avail, nil
}

func (a *Availability) Set(ctx context.Context, avail *domain.DayAvailability) error {
	b, err := json.Marshal(avail)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := a.rdb.Set(ctx, key(avail.VehicleID, avail.Day), b, a.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (a *Availability) Invalidate(ctx context.Context, vehicleID string, day time.Time) error {
	if err := a.rdb.Del(ctx, key(vehicleID, day)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}
