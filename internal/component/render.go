// component/render.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Sprite — компонент для отрисовки: цвет-оттенок и ячейка атласа.
type Sprite struct {
	Color mgl32.Vec4
	Cell  mgl32.Vec2
}
