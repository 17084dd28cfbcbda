// pkg/render/ebitendev/atlas.go
package ebitendev

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-shooter/pkg/render"
)

// Размер процедурного атласа в ячейках.
const (
	AtlasColumns = 49
	AtlasRows    = 22
)

// NewAtlas рисует атлас спрайтов: в каждой ячейке из glyphs своя форма,
// остальные ячейки прозрачные.
func NewAtlas(glyphs render.GlyphMap, cellSize int) *ebiten.Image {
	img := ebiten.NewImage(AtlasColumns*cellSize, AtlasRows*cellSize)
	for cell, glyph := range glyphs {
		if cell[0] < 0 || cell[0] >= AtlasColumns || cell[1] < 0 || cell[1] >= AtlasRows {
			continue
		}
		drawGlyph(img, float32(cell[0]*cellSize), float32(cell[1]*cellSize), float32(cellSize), glyph)
	}
	return img
}

func drawGlyph(dst *ebiten.Image, x, y, size float32, g render.Glyph) {
	c := g.Color()
	cx, cy := x+size/2, y+size/2
	stroke := size / 8
	switch g {
	case render.GlyphShip:
		// нос смотрит вверх по атласу
		top, left, right := [2]float32{cx, y + 1}, [2]float32{x + 2, y + size - 2}, [2]float32{x + size - 2, y + size - 2}
		vector.StrokeLine(dst, top[0], top[1], left[0], left[1], stroke, c, true)
		vector.StrokeLine(dst, top[0], top[1], right[0], right[1], stroke, c, true)
		vector.StrokeLine(dst, left[0], left[1], cx, y+size*0.7, stroke, c, true)
		vector.StrokeLine(dst, right[0], right[1], cx, y+size*0.7, stroke, c, true)
	case render.GlyphBullet:
		vector.DrawFilledCircle(dst, cx, cy, size/5, c, true)
	case render.GlyphCrab:
		vector.DrawFilledRect(dst, x+size/4, y+size/3, size/2, size/3, c, true)
		vector.StrokeLine(dst, x+1, y+2, x+size/4, y+size/3, stroke, c, true)
		vector.StrokeLine(dst, x+size-1, y+2, x+size*3/4, y+size/3, stroke, c, true)
		vector.StrokeLine(dst, x+size/4, y+size*2/3, x+2, y+size-1, stroke, c, true)
		vector.StrokeLine(dst, x+size*3/4, y+size*2/3, x+size-2, y+size-1, stroke, c, true)
	case render.GlyphSkull:
		vector.DrawFilledCircle(dst, cx, cy-size/10, size*0.38, c, true)
		vector.DrawFilledRect(dst, x+size*0.3, cy+size/8, size*0.4, size/4, c, true)
		vector.DrawFilledCircle(dst, cx-size/6, cy-size/10, size/10, render.DarkenColor(render.DarkenColor(c)), true)
		vector.DrawFilledCircle(dst, cx+size/6, cy-size/10, size/10, render.DarkenColor(render.DarkenColor(c)), true)
	case render.GlyphBlob:
		vector.DrawFilledCircle(dst, cx, cy, size*0.4, c, true)
		vector.StrokeCircle(dst, cx, cy, size*0.4, stroke/2, render.DarkenColor(c), true)
	default:
		vector.StrokeRect(dst, x+1, y+1, size-2, size-2, stroke, c, true)
	}
}
