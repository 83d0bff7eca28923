package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimitStore counts requests per caller in fixed windows backed by Redis.
// Key format: ratelimit:<identifier>:<window_index>
//
// It satisfies echo's middleware.RateLimiterStore.
type RateLimitStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewRateLimitStore allows limit requests per identifier in every window.
func NewRateLimitStore(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *RateLimitStore {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimitStore{
		client: client,
		limit:  int64(limit),
		window: window,
		log:    log,
		now:    time.Now,
	}
}

// Allow records one request for identifier and reports whether it is within
// budget. Redis failures are logged and the request is let through.
func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := s.hit(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit check failed, allowing request")
		return true, nil
	}
	return count <= s.limit, nil
}

func (s *RateLimitStore) hit(ctx context.Context, identifier string) (int64, error) {
	key := s.key(identifier, s.now())

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	return incr.Val(), nil
}

func (s *RateLimitStore) key(identifier string, at time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", identifier, at.UnixNano()/int64(s.window))
}
