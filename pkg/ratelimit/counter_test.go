package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-talent-backend/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Counts within a window and resets after it", func(t *testing.T) {
		c := ratelimit.NewMemoryCounter()
		c.SetClock(func() time.Time { return now })

		n, resetAt, err := c.Incr(ctx, "ip", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, now.Add(time.Minute), resetAt)

		n, _, _ = c.Incr(ctx, "ip", time.Minute)
		assert.Equal(t, 2, n)

		c.SetClock(func() time.Time { return now.Add(2 * time.Minute) })
		n, _, _ = c.Incr(ctx, "ip", time.Minute)
		assert.Equal(t, 1, n)
	})

	t.Run("Instances are isolated", func(t *testing.T) {
		a, b := ratelimit.NewMemoryCounter(), ratelimit.NewMemoryCounter()
		a.Incr(ctx, "k", time.Minute)
		a.Incr(ctx, "k", time.Minute)

		n, _, _ := b.Incr(ctx, "k", time.Minute)
		assert.Equal(t, 1, n)
	})

	t.Run("Sweep drops expired keys only", func(t *testing.T) {
		c := ratelimit.NewMemoryCounter()
		c.SetClock(func() time.Time { return now })
		c.Incr(ctx, "short", time.Second)
		c.Incr(ctx, "long", time.Hour)

		c.SetClock(func() time.Time { return now.Add(time.Minute) })
		assert.Equal(t, 1, c.Sweep())

		n, _, _ := c.Incr(ctx, "long", time.Hour)
		assert.Equal(t, 2, n)
	})

	t.Run("Concurrent increments are not lost", func(t *testing.T) {
		c := ratelimit.NewMemoryCounter()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Incr(ctx, "k", time.Hour)
			}()
		}
		wg.Wait()

		n, _, _ := c.Incr(ctx, "k", time.Hour)
		assert.Equal(t, 51, n)
	})
}

func TestParseIncrResult(t *testing.T) {
	now := time.Now()

	n, resetAt, err := ratelimit.ParseIncrResult([]any{int64(3), int64(40)}, now)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, now.Add(40*time.Second), resetAt)

	_, _, err = ratelimit.ParseIncrResult("OK", now)
	assert.Error(t, err)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	args := m.Called(ctx, key, window)
	return args.Int(0), args.Get(1).(time.Time), args.Error(2)
}

func TestFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses secondary when primary fails", func(t *testing.T) {
		primary := new(MockCounter)
		primary.On("Incr", ctx, "k", time.Minute).Return(0, time.Time{}, errors.New("redis down"))

		f := ratelimit.Fallback{Primary: primary, Secondary: ratelimit.NewMemoryCounter()}
		n, _, err := f.Incr(ctx, "k", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Returns the primary error without secondary", func(t *testing.T) {
		primary := new(MockCounter)
		primary.On("Incr", ctx, "k", time.Minute).Return(0, time.Time{}, errors.New("redis down"))

		_, _, err := ratelimit.Fallback{Primary: primary}.Incr(ctx, "k", time.Minute)
		assert.EqualError(t, err, "redis down")
	})
}
