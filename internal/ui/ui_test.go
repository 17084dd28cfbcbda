package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
)

func TestCellColor(t *testing.T) {
	// полное здоровье: первая половина синяя, вторая красная
	assert.Equal(t, config.HealthFullColor, cellColor(0, 10, 10))
	assert.Equal(t, config.HealthFullColor, cellColor(4, 10, 10))
	assert.Equal(t, config.HealthLowColor, cellColor(5, 10, 10))

	// меньше половины: всё оставшееся красное
	assert.Equal(t, config.HealthLowColor, cellColor(0, 4, 10))
	assert.Equal(t, config.HealthEmptyColor, cellColor(4, 4, 10))
	assert.Equal(t, config.HealthEmptyColor, cellColor(0, 0, 10))
}

func TestKillIndicatorPulse(t *testing.T) {
	now := time.Unix(100, 0)
	i := NewKillIndicator(0, 0, 10)
	i.now = func() time.Time { return now }

	i.OnEvent(event.Event{Type: event.PlayerDied})
	assert.True(t, i.LastHit.IsZero())

	i.OnEvent(event.Event{Type: event.EnemyKilled})
	assert.Equal(t, now, i.LastHit)
	assert.InDelta(t, 1.3, pulseScale(0), 1e-9)
	assert.InDelta(t, 1.0, pulseScale(5), 1e-6)
	assert.InDelta(t, 1.3, pulseScale(-1), 1e-9)
}
