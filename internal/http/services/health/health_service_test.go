package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Ready(t *testing.T) {
	svc := NewHealthService(Deps{
		StorageCheck: func(context.Context) error { return nil },
		Version:      "1.2.3",
	})

	resp := svc.Check(context.Background())
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "ok", resp.Components["storage"].Status)
	_, hasRate := resp.Components["rate_limiter"]
	assert.False(t, hasRate)
}

func TestCheck_StorageDown(t *testing.T) {
	svc := NewHealthService(Deps{
		StorageCheck: func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	resp := svc.Check(context.Background())
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "error", resp.Components["storage"].Status)
	assert.NotContains(t, resp.Components["storage"].Message, "refused")
}

func TestCheck_NoStorage(t *testing.T) {
	resp := NewHealthService(Deps{}).Check(context.Background())
	assert.Equal(t, "unavailable", resp.Status)
}

func TestCheck_RateBackendDownIsNotCritical(t *testing.T) {
	svc := NewHealthService(Deps{
		StorageCheck: func(context.Context) error { return nil },
		RateCheck:    func(context.Context) error { return errors.New("redis down") },
	})

	resp := svc.Check(context.Background())
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "error", resp.Components["rate_limiter"].Status)
}

func TestCheck_ProbeTimeout(t *testing.T) {
	svc := NewHealthService(Deps{
		Timeout: 10 * time.Millisecond,
		StorageCheck: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	resp := svc.Check(context.Background())
	assert.Equal(t, "unavailable", resp.Status)
}
