package rate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	rdb "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 10, 0, 10, 0, time.UTC)

func newRedis(t *testing.T) (*miniredis.Miniredis, *rdb.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := rdb.NewClient(&rdb.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func exercise(t *testing.T, l Limiter, setNow func(time.Time)) {
	t.Helper()
	ctx := context.Background()
	setNow(t0)

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "1.2.3.4|/login")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "hit %d", i)
		assert.Equal(t, int64(3-i), res.Remaining)
		assert.Equal(t, 50*time.Second, res.WindowTTL)
	}

	res, err := l.Allow(ctx, "1.2.3.4|/login")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(4), res.CurrentHits)
	assert.Equal(t, 50*time.Second, res.RetryAfter)

	// Otra clave tiene su propio contador.
	res, err = l.Allow(ctx, "1.2.3.4|/users/register")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	// Nueva ventana.
	setNow(t0.Add(time.Minute))
	res, err = l.Allow(ctx, "1.2.3.4|/login")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(1), res.CurrentHits)
}

func TestRedisLimiter(t *testing.T) {
	mr, client := newRedis(t)
	l := NewRedisLimiter(client, "", 3, time.Minute)
	exercise(t, l, func(now time.Time) { l.Now = func() time.Time { return now } })

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	assert.Contains(t, keys[0], "rl:")
	assert.True(t, mr.TTL(keys[0]) > 0, "la clave tiene expiración")
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr, client := newRedis(t)
	l := NewRedisLimiter(client, "rl:", 3, time.Minute)
	mr.Close()
	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter("rl:", 3, time.Minute)
	exercise(t, l, func(now time.Time) { l.Now = func() time.Time { return now } })
}
