package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"bfbsupply/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateStore counts hits per key within a fixed window. Hit returns the
// count after this hit and when the current window ends.
type RateStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// RateLimiter returns a fixed-window limiter keyed by client IP. If the
// store fails the request is let through and the failure logged.
func RateLimiter(store RateStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		count, windowEnd, err := store.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter store failed")
			c.Next()
			return
		}
		if count > int64(limit) {
			retry := int(time.Until(windowEnd).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}

// ── In-process store ──────────────────────────────────────────────────────────

type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryRateStore keeps counters in process memory. Expired entries are
// purged every purgeInterval until ctx is cancelled.
type MemoryRateStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	now     func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryRateStore(ctx context.Context) *MemoryRateStore {
	s := &MemoryRateStore{entries: make(map[string]*rateEntry), now: time.Now}
	go s.purgeLoop(ctx)
	return s
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd, nil
}

func (s *MemoryRateStore) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := s.purge(); purged > 0 {
				log.Debug().Int("entries_purged", purged).Msg("rate limiter entries purged")
			}
		}
	}
}

func (s *MemoryRateStore) purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for key, entry := range s.entries {
		if now.After(entry.windowEnd) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged
}

// ── Redis store ───────────────────────────────────────────────────────────────

// RedisRateStore shares counters between replicas. The window starts at
// the first INCR of a key and ends when the key expires.
type RedisRateStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisRateStore(rdb *redis.Client) *RedisRateStore {
	return &RedisRateStore{rdb: rdb, prefix: "bfbsupply:ratelimit:"}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}
	remaining := ttl.Val()
	if remaining < 0 {
		// first hit of the window; the key has no expiry yet
		if err := s.rdb.PExpire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}
