// Package ratelimit provides windowed request counters. Counters are
// ordinary values handed to the components that need them; there is no
// process-wide state.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter increments key within a fixed window and reports the count so far
// and when the window resets.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// RedisCounter shares counts across instances through Redis.
type RedisCounter struct {
	client redis.Scripter
	prefix string
}

func NewRedisCounter(client redis.Scripter, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	ttlSeconds := int(window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := incrScript.Run(ctx, r.client, []string{r.prefix + key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	return parseIncrResult(result, time.Now())
}

func parseIncrResult(result any, now time.Time) (int, time.Time, error) {
	arr, ok := result.([]any)
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, errors.New("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), now.Add(time.Duration(ttl) * time.Second), nil
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryCounter keeps counts in process. Expired entries stay until Sweep.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*entry), now: time.Now}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{resetAt: now.Add(window)}
		m.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt, nil
}

// Sweep drops expired entries and returns how many were removed.
func (m *MemoryCounter) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k, e := range m.entries {
		if now.After(e.resetAt) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *MemoryCounter) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Fallback uses primary and switches to secondary for a call whose primary
// increment failed.
type Fallback struct {
	Primary   Counter
	Secondary Counter
}

func (f Fallback) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	count, resetAt, err := f.Primary.Incr(ctx, key, window)
	if err == nil {
		return count, resetAt, nil
	}
	if f.Secondary == nil {
		return 0, time.Time{}, err
	}
	return f.Secondary.Incr(ctx, key, window)
}
