// internal/ui/health_indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-shooter/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// HealthIndicator отображает здоровье игрока сеткой кружков.
type HealthIndicator struct {
	X, Y float32
	face text.Face
}

func NewHealthIndicator(x, y float32, face text.Face) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует индикатор. health округляется вверх, чтобы последний
// неполный кружок ещё был виден.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float32) {
	filled := int(math.Ceil(float64(health)))
	total := int(math.Ceil(float64(maxHealth)))
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < total; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, cellColor(j, filled, total), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.TextLightColor, true)
	}

	if i.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(i.X), float64(i.Y)-24)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, strconv.Itoa(max(filled, 0))+"/"+strconv.Itoa(total), i.face, op)
}

// cellColor: пустые кружки чёрные; пока здоровья больше половины, "избыток"
// синий, остальное красное.
func cellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return config.HealthEmptyColor
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return config.HealthFullColor
	}
	return config.HealthLowColor
}
