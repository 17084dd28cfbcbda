package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTimer(smooth int, interval float32) (*Timer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return New(smooth, interval, clock.Now), clock
}

func TestDeltaAndLifetime(t *testing.T) {
	tm, clock := newTimer(4, 1000)

	clock.Advance(16 * time.Millisecond)
	tm.Update()
	assert.InDelta(t, 0.016, tm.Delta(), 1e-6)
	assert.InDelta(t, 16, tm.FrameTime(), 1e-4)

	clock.Advance(34 * time.Millisecond)
	tm.Update()
	assert.InDelta(t, 0.050, tm.Lifetime(), 1e-6)
	assert.InDelta(t, 1000.0/34, tm.FPS(), 1e-2)
}

func TestMaxDeltaClampsSimulationOnly(t *testing.T) {
	tm, clock := newTimer(4, 1000)
	tm.SetMaxDelta(0.06)

	clock.Advance(500 * time.Millisecond)
	tm.Update()
	assert.InDelta(t, 0.06, tm.Delta(), 1e-6)
	assert.InDelta(t, 500, tm.FrameTime(), 1e-3)
}

func TestSmoothingWindowAndInterval(t *testing.T) {
	tm, clock := newTimer(2, 30)

	clock.Advance(10 * time.Millisecond)
	assert.False(t, tm.Update())
	clock.Advance(10 * time.Millisecond)
	assert.False(t, tm.Update())
	assert.Zero(t, tm.FrameTimeSmooth(), "not reported before the interval elapses")

	clock.Advance(40 * time.Millisecond)
	require.True(t, tm.Update())
	// окно из двух последних кадров: 10 и 40
	assert.InDelta(t, 25, tm.FrameTimeSmooth(), 1e-4)
	assert.InDelta(t, 40, tm.FPSSmooth(), 1e-3)
}

func TestPauseFreezesLifetime(t *testing.T) {
	tm, clock := newTimer(4, 1000)
	clock.Advance(100 * time.Millisecond)
	tm.Update()
	before := tm.Lifetime()

	tm.SetPaused(true)
	clock.Advance(100 * time.Millisecond)
	tm.Update()
	assert.True(t, tm.Paused())
	assert.Zero(t, tm.Delta())
	assert.Equal(t, before, tm.Lifetime())
	assert.InDelta(t, 100, tm.FrameTime(), 1e-3)
}

func TestResetLifetimeAndBackwardsClock(t *testing.T) {
	tm, clock := newTimer(4, 1000)
	clock.Advance(time.Second)
	tm.Update()
	tm.ResetLifetime()
	assert.Zero(t, tm.Lifetime())

	clock.Advance(-time.Second)
	tm.Update()
	assert.Zero(t, tm.Delta())
	assert.Zero(t, tm.FPS())
}
