package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rl, err := NewRateLimiter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { rl.Close() })
	return rl, mr
}

func TestAllowCountsPerCity(t *testing.T) {
	rl, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "c1", 2)
		require.NoError(t, err)
		assert.True(t, ok, "request %d should be within the limit", i+1)
	}

	ok, err := rl.Allow(ctx, "c1", 2)
	require.NoError(t, err)
	assert.False(t, ok, "third request must exceed a limit of 2")

	// Another city has its own window.
	ok, err = rl.Allow(ctx, "c2", 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllowWindowRollover(t *testing.T) {
	rl, _ := newTestLimiter(t)
	ctx := context.Background()

	frozen := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	ok, err := rl.Allow(ctx, "c1", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rl.Allow(ctx, "c1", 1)
	require.NoError(t, err)
	assert.False(t, ok, "window is exhausted")

	// The next hour keys a fresh window.
	rl.now = func() time.Time { return frozen.Add(time.Hour) }

	ok, err = rl.Allow(ctx, "c1", 1)
	require.NoError(t, err)
	assert.True(t, ok, "a new hour must reset the count")
}

func TestAllowSetsWindowExpiry(t *testing.T) {
	rl, mr := newTestLimiter(t)
	ctx := context.Background()

	frozen := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	_, err := rl.Allow(ctx, "c1", 5)
	require.NoError(t, err)

	key := fmt.Sprintf("genlimit:city:%s:%s", "c1", frozen.Format("2006-01-02-15"))
	assert.Equal(t, time.Hour, mr.TTL(key), "first hit in a window must arm the TTL")

	// Subsequent hits leave the original TTL in place.
	mr.FastForward(30 * time.Minute)
	_, err = rl.Allow(ctx, "c1", 5)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL(key))
}
