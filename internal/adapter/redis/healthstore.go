// Package redis implements the router health store on Redis so cooldown
// state is shared across application instances.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// failureTTL bounds how long a stale failure counter survives when a
// provider simply stops being called.
const failureTTL = 10 * time.Minute

// HealthStore tracks provider failures and cooldown windows in Redis.
type HealthStore struct {
	client *redis.Client
}

// NewHealthStore creates a HealthStore backed by client.
func NewHealthStore(client *redis.Client) *HealthStore {
	return &HealthStore{client: client}
}

func failuresKey(p domain.Provider) string {
	return fmt.Sprintf("provider:%s:failures", p)
}

func cooldownKey(p domain.Provider) string {
	return fmt.Sprintf("provider:%s:cooldown_until", p)
}

// MarkFailure increments the consecutive-failure counter and returns the new
// count.
func (s *HealthStore) MarkFailure(ctx context.Context, p domain.Provider) (int, error) {
	key := failuresKey(p)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: mark failure: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, failureTTL).Err(); err != nil {
			return 0, fmt.Errorf("redis: mark failure: %w", err)
		}
	}
	return int(count), nil
}

// MarkSuccess resets the failure counter and clears any cooldown.
func (s *HealthStore) MarkSuccess(ctx context.Context, p domain.Provider) error {
	if err := s.client.Del(ctx, failuresKey(p), cooldownKey(p)).Err(); err != nil {
		return fmt.Errorf("redis: mark success: %w", err)
	}
	return nil
}

// SetUnhealthy opens a cooldown window ending at until. The key expires with
// the window, so readers after expiry see a healthy provider.
func (s *HealthStore) SetUnhealthy(ctx context.Context, p domain.Provider, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	value := until.UTC().Format(time.RFC3339Nano)
	if err := s.client.Set(ctx, cooldownKey(p), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set unhealthy: %w", err)
	}
	return nil
}

// UnhealthyUntil returns the end of the current cooldown window, or the zero
// time when the provider is healthy.
func (s *HealthStore) UnhealthyUntil(ctx context.Context, p domain.Provider) (time.Time, error) {
	value, err := s.client.Get(ctx, cooldownKey(p)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("redis: unhealthy until: %w", err)
	}

	until, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("redis: unhealthy until: parse %q: %w", value, err)
	}
	return until, nil
}
