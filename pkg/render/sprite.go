// pkg/render/sprite.go
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sprite — то, что рендер знает о рисуемой сущности.
type Sprite struct {
	Position mgl32.Vec3
	Size     mgl32.Vec2
	Rotation mgl32.Vec3
	Color    mgl32.Vec4
	Cell     mgl32.Vec2 // ячейка атласа
}

// SpriteSource — вытягивающий итератор спрайтов. Рендер может остановиться
// между проходами и продолжить с того же места.
type SpriteSource interface {
	Next() (Sprite, bool)
}

// SliceSource — SpriteSource поверх среза.
type SliceSource struct {
	Sprites []Sprite
	pos     int
}

func (s *SliceSource) Next() (Sprite, bool) {
	if s.pos >= len(s.Sprites) {
		return Sprite{}, false
	}
	sp := s.Sprites[s.pos]
	s.pos++
	return sp, true
}

// Cell — целочисленные координаты ячейки атласа.
type Cell [2]int

// CellAt восстанавливает ячейку по текстурным координатам записи.
func CellAt(texCoords mgl32.Vec2, cellSize float32) Cell {
	if cellSize <= 0 {
		return Cell{}
	}
	return Cell{
		int(math.Floor(float64(texCoords.X()/cellSize + 0.5))),
		int(math.Floor(float64(texCoords.Y()/cellSize + 0.5))),
	}
}

// Glyph — форма, которой процедурный атлас или терминал рисует ячейку.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphShip
	GlyphBullet
	GlyphCrab
	GlyphSkull
	GlyphBlob
)

// GlyphMap сопоставляет ячейкам атласа формы.
type GlyphMap map[Cell]Glyph

// Lookup возвращает форму ячейки или GlyphNone.
func (m GlyphMap) Lookup(c Cell) Glyph {
	if g, ok := m[c]; ok {
		return g
	}
	return GlyphNone
}

// glyphColors — базовые цвета форм. Спрайт подмешивает к ним свой цвет с силой Color.W().
var glyphColors = map[Glyph]color.RGBA{
	GlyphNone:   {255, 0, 255, 255},
	GlyphShip:   {200, 220, 255, 255},
	GlyphBullet: {255, 240, 120, 255},
	GlyphCrab:   {255, 120, 80, 255},
	GlyphSkull:  {230, 230, 230, 255},
	GlyphBlob:   {120, 255, 120, 255},
}

// Color — базовый цвет формы.
func (g Glyph) Color() color.RGBA {
	if c, ok := glyphColors[g]; ok {
		return c
	}
	return glyphColors[GlyphNone]
}

// Tint подмешивает цвет спрайта к base с силой c.W(), как это делает шейдер спрайтов.
func Tint(base color.RGBA, c mgl32.Vec4) color.RGBA {
	a := c.W()
	mixed := ToVec4(base).Mul(1 - a).Add(c.Mul(a))
	mixed[3] = float32(base.A) / 255
	return ToRGBA(mixed)
}
