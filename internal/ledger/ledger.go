// Package ledger records which bookings have already been notified, so a
// reminder scan over an overlapping window does not message the same client
// twice across runs.
package ledger

import (
	"context"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/tools/caching"
	"github.com/redis/go-redis/v9"
)

type Ledger struct {
	cache *caching.Cacher
	ttl   time.Duration
}

func New(redisClient *redis.Client, ttl time.Duration) *Ledger {
	return &Ledger{
		cache: caching.NewRedisCache(redisClient),
		ttl:   ttl,
	}
}

// AlreadyNotified reports whether a notification for this booking was
// recorded within the ledger TTL. A redis failure reads as "not notified":
// re-sending beats silently dropping.
func (l *Ledger) AlreadyNotified(ctx context.Context, bookingID string) bool {
	var lastNotified time.Time

	return l.cache.Fetch(ctx, key(bookingID), &lastNotified)
}

func (l *Ledger) MarkNotified(ctx context.Context, bookingID string, at time.Time) error {
	return l.cache.Store(ctx, key(bookingID), at, l.ttl)
}

func key(bookingID string) string {
	return "notified-booking:" + bookingID
}
