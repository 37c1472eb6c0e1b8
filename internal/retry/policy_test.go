package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rulesgen/internal/config"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	require.Equal(t, config.RetryBackoffLinear, p.Mode)
	require.Equal(t, 500*time.Millisecond, p.Initial)
	require.Equal(t, 10*time.Second, p.Max)
	require.Zero(t, p.MaxRetries)
	require.NoError(t, p.Validate())
}

func TestNewPolicyOverrides(t *testing.T) {
	p := NewPolicy(config.RetryBackoffFixed, 5*time.Second, 2*time.Second, 5)
	require.Equal(t, 2*time.Second, p.Initial, "initial clamped to max")
	require.Equal(t, 2*time.Second, p.Max)
	require.Equal(t, config.RetryBackoffFixed, p.Mode)
	require.Equal(t, 5, p.MaxRetries)

	p = NewPolicy("bogus", 0, 0, -1)
	require.Equal(t, DefaultPolicy(), p)
}

func TestDelayModes(t *testing.T) {
	fixed := NewPolicy(config.RetryBackoffFixed, 100*time.Millisecond, 500*time.Millisecond, 3)
	for i := 1; i <= 3; i++ {
		require.Equal(t, 100*time.Millisecond, fixed.Delay(i))
	}

	linear := NewPolicy(config.RetryBackoffLinear, 100*time.Millisecond, 250*time.Millisecond, 5)
	for attempt, want := range map[int]time.Duration{1: 100 * time.Millisecond, 2: 200 * time.Millisecond, 3: 250 * time.Millisecond, 4: 250 * time.Millisecond} {
		require.Equal(t, want, linear.Delay(attempt), "linear attempt %d", attempt)
	}

	exp := NewPolicy(config.RetryBackoffExponential, 50*time.Millisecond, 160*time.Millisecond, 5)
	for attempt, want := range map[int]time.Duration{1: 50 * time.Millisecond, 2: 100 * time.Millisecond, 3: 160 * time.Millisecond, 4: 160 * time.Millisecond} {
		require.Equal(t, want, exp.Delay(attempt), "exponential attempt %d", attempt)
	}

	require.Zero(t, exp.Delay(0))
}

func TestForHub(t *testing.T) {
	p := ForHub(config.HubConfig{
		MaxRetries:        3,
		RetryBackoff:      config.RetryBackoffExponential,
		RetryInitialDelay: "200ms",
		RetryMaxDelay:     "not-a-duration",
	})
	require.Equal(t, 3, p.MaxRetries)
	require.Equal(t, config.RetryBackoffExponential, p.Mode)
	require.Equal(t, 200*time.Millisecond, p.Initial)
	require.Equal(t, 10*time.Second, p.Max)
}

func TestWait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
	require.NoError(t, Wait(context.Background(), time.Millisecond))
}
