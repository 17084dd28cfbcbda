package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"go-space-shooter/internal/input"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), input.KeyRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeyFire},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), input.KeyRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), input.KeyPause},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), input.KeyReload},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.KeyUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, translate(c.ev), c.ev.Name())
	}
}

func TestAutoReleaseHoldsWhileRepeating(t *testing.T) {
	latch := input.NewLatch()
	keys := newAutoRelease(3)

	keys.press(latch, input.KeyFire)
	keys.tick(latch)
	keys.tick(latch)
	assert.True(t, latch.Held(input.KeyFire))

	// автоповтор продлевает удержание
	keys.press(latch, input.KeyFire)
	keys.tick(latch)
	keys.tick(latch)
	assert.True(t, latch.Held(input.KeyFire))

	keys.tick(latch)
	assert.False(t, latch.Held(input.KeyFire))
	assert.Empty(t, latch.Keys())
}

func TestAutoReleaseIgnoresUnknown(t *testing.T) {
	latch := input.NewLatch()
	keys := newAutoRelease(0)
	keys.press(latch, input.KeyUnknown)
	assert.Empty(t, keys.ttl)

	keys.press(latch, input.KeyUp)
	keys.tick(latch)
	assert.False(t, latch.Held(input.KeyUp), "hold of at least one frame")
}
