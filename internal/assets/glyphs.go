// internal/assets/glyphs.go
package assets

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// SpriteGlyphs — какие формы процедурный атлас рисует в ячейках, которые использует игра.
func SpriteGlyphs() render.GlyphMap {
	glyphs := render.GlyphMap{
		cellOf(config.PlayerCell):     render.GlyphShip,
		cellOf(config.ProjectileCell): render.GlyphBullet,
	}
	enemyGlyphs := []render.Glyph{render.GlyphCrab, render.GlyphSkull, render.GlyphBlob}
	for i, c := range config.EnemyCells {
		glyphs[cellOf(c)] = enemyGlyphs[i%len(enemyGlyphs)]
	}
	return glyphs
}

func cellOf(v mgl32.Vec2) render.Cell {
	return render.Cell{int(v.X()), int(v.Y())}
}
