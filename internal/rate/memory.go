package rate

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryLimiter es la variante de una sola instancia, sobre go-cache.
// Los contadores expiran solos al cerrar su ventana.
type MemoryLimiter struct {
	c      *gocache.Cache
	Prefix string
	Max    int64
	Window time.Duration
	Now    func() time.Time
}

func NewMemoryLimiter(prefix string, max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		c:      gocache.New(window, time.Minute),
		Prefix: prefix,
		Max:    int64(max),
		Window: window,
		Now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	k, remaining := windowKey(l.Prefix, key, l.Now().UTC(), l.Window)

	for {
		if err := l.c.Add(k, int64(1), l.Window); err == nil {
			return result(1, l.Max, remaining), nil
		}
		hits, err := l.c.IncrementInt64(k, 1)
		if err == nil {
			return result(hits, l.Max, remaining), nil
		}
		// La entrada expiró entre Add e Increment: reintentar.
	}
}
