// internal/ui/kill_indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-shooter/internal/event"
)

// KillIndicator — кружок, который вспыхивает при каждом убитом враге.
type KillIndicator struct {
	X, Y    float32
	Radius  float32
	LastHit time.Time
	now     func() time.Time
}

func NewKillIndicator(x, y, radius float32) *KillIndicator {
	return &KillIndicator{X: x, Y: y, Radius: radius, now: time.Now}
}

func (i *KillIndicator) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		i.LastHit = i.now()
	}
}

// Draw отрисовывает индикатор
func (i *KillIndicator) Draw(screen *ebiten.Image, c color.RGBA) {
	r := i.Radius * float32(pulseScale(i.now().Sub(i.LastHit).Seconds()))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

func pulseScale(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}
