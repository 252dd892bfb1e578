package sensor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvSample(t *testing.T, ch <-chan Sample) Sample {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "channel closed before delivering a sample")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sample")
		return Sample{}
	}
}

func waitClosed(t *testing.T, ch <-chan Sample) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed")
		}
	}
}

func TestEmulatorEmitsCurrentAngle(t *testing.T) {
	e := NewEmulator(100, 12)
	defer e.Stop()

	ch, err := e.Start(context.Background())
	require.NoError(t, err)

	s := recvSample(t, ch)
	assert.True(t, s.Valid)
	assert.Equal(t, 0.0, s.Beta)

	e.Nudge(1)
	assert.Equal(t, 12.0, e.Current())

	// The nudged angle shows up in the stream shortly after.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if s.Beta == 12.0 {
				return
			}
		case <-deadline:
			t.Fatal("nudged angle never emitted")
		}
	}
}

func TestEmulatorRestartReplacesSubscription(t *testing.T) {
	e := NewEmulator(100, 12)
	defer e.Stop()

	first, err := e.Start(context.Background())
	require.NoError(t, err)
	recvSample(t, first)

	// A second Start tears down the first subscription: exactly one
	// stream stays live, however many times the game restarts.
	second, err := e.Start(context.Background())
	require.NoError(t, err)

	waitClosed(t, first)
	recvSample(t, second)
}

func TestEmulatorStopIsIdempotent(t *testing.T) {
	e := NewEmulator(100, 12)

	ch, err := e.Start(context.Background())
	require.NoError(t, err)

	e.Stop()
	e.Stop()
	waitClosed(t, ch)

	// Stop without Start must not panic either.
	NewEmulator(100, 12).Stop()
}

func TestEmulatorScopesToContext(t *testing.T) {
	e := NewEmulator(100, 12)
	defer e.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := e.Start(ctx)
	require.NoError(t, err)

	cancel()
	waitClosed(t, ch)
}
