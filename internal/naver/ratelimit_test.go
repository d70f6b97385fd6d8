package naver_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flower-finder/internal/naver"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 25000,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 25000,
			calls: 5,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := naver.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, naver.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_DailyCount(t *testing.T) {
	t.Parallel()

	rl := naver.NewRateLimiter(100, 10, 25000)

	assert.Equal(t, int64(0), rl.DailyCount())
	assert.Equal(t, int64(25000), rl.Remaining())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.DailyCount())
	assert.Equal(t, int64(24998), rl.Remaining())
	assert.Equal(t, int64(25000), rl.MaxDaily())
}

func TestRateLimiter_RejectedCallsAreNotCounted(t *testing.T) {
	t.Parallel()

	rl := naver.NewRateLimiter(100, 10, 1)

	require.NoError(t, rl.Wait(context.Background()))
	require.Error(t, rl.Wait(context.Background()))
	require.Error(t, rl.Wait(context.Background()))

	assert.Equal(t, int64(1), rl.DailyCount())
	assert.Equal(t, int64(0), rl.Remaining())
}

func TestRateLimiter_DailyReset(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	currentTime := start

	rl := naver.NewRateLimiter(
		100, 10, 2,
		naver.WithRateLimiterNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return currentTime
		}),
	)
	assert.Equal(t, start.Add(24*time.Hour), rl.ResetAt())

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), naver.ErrDailyLimitReached)

	// Still inside the window.
	mu.Lock()
	currentTime = start.Add(23 * time.Hour)
	mu.Unlock()
	require.ErrorIs(t, rl.Wait(context.Background()), naver.ErrDailyLimitReached)

	// Past the window: the counter resets on the next call.
	mu.Lock()
	currentTime = start.Add(24*time.Hour + time.Minute)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
	assert.Equal(t, start.Add(48*time.Hour+time.Minute), rl.ResetAt())
}

func TestRateLimiter_ConcurrentCallersRespectDailyLimit(t *testing.T) {
	t.Parallel()

	rl := naver.NewRateLimiter(1000, 100, 10)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Wait(context.Background()) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.Equal(t, int64(10), rl.DailyCount())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// Very slow rate limiter: 1 per 10 seconds, burst 1.
	rl := naver.NewRateLimiter(0.1, 1, 25000)

	// First call should succeed (uses burst).
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
	assert.Equal(t, int64(1), rl.DailyCount())
}
