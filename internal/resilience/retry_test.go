package resilience

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestDoVal_SucceedsFirstTry(t *testing.T) {
	calls := 0
	v, err := DoVal(context.Background(), fastPolicy(3), "op", func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestDoVal_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	v, err := DoVal(context.Background(), fastPolicy(3), "op", func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", eris.New("status 503 service unavailable")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestDoVal_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), fastPolicy(3), "op", func(ctx context.Context) (int, error) {
		calls++
		return 0, eris.New("status 500")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoVal_NonTransientFailsFast(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), fastPolicy(3), "op", func(ctx context.Context) (int, error) {
		calls++
		return 0, eris.New("INVALID_FIELD: No such column")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoVal_ContextCancelStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := DoVal(ctx, fastPolicy(5), "op", func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, eris.New("status 503")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoVal_CustomRetryable(t *testing.T) {
	p := fastPolicy(3)
	p.Retryable = func(err error) bool { return false }

	calls := 0
	_, err := DoVal(context.Background(), p, "op", func(ctx context.Context) (int, error) {
		calls++
		return 0, eris.New("status 503")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_WrapsDoVal(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(2), "op", func(ctx context.Context) error {
		calls++
		return eris.New("i/o timeout")
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(syscall.ECONNRESET))
	assert.True(t, IsTransient(eris.New("sf: query: REQUEST_LIMIT_EXCEEDED")))
	assert.True(t, IsTransient(eris.New("got status 429 from api")))
	assert.True(t, IsTransient(eris.New("dial tcp: i/o timeout")))
	assert.False(t, IsTransient(eris.New("INVALID_SESSION_ID")))
	assert.False(t, IsTransient(eris.New("status 400 bad request")))
}

func TestBackoff_CapsAtMaxDelay(t *testing.T) {
	p := Policy{BaseDelay: time.Second, MaxDelay: 2 * time.Second}
	// Attempt 5 would be 32s uncapped; with cap and ±25% jitter the result
	// stays within [1.5s, 2.5s].
	d := backoff(5, p)
	assert.GreaterOrEqual(t, d, 1500*time.Millisecond)
	assert.LessOrEqual(t, d, 2500*time.Millisecond)
}
