// pkg/render/project.go
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// QuadCorners возвращает углы спрайта в мировых координатах:
// левый нижний, правый нижний, левый верхний, правый верхний.
// Size — полуразмеры, поворот вокруг Z на Rotation.X().
func QuadCorners(a SpriteArgs) [4]mgl32.Vec3 {
	s, c := math.Sincos(float64(a.Rotation.X()))
	sin, cos := float32(s), float32(c)
	local := [4]mgl32.Vec2{
		{-a.Size.X(), -a.Size.Y()},
		{a.Size.X(), -a.Size.Y()},
		{-a.Size.X(), a.Size.Y()},
		{a.Size.X(), a.Size.Y()},
	}
	var out [4]mgl32.Vec3
	for i, l := range local {
		out[i] = mgl32.Vec3{
			a.Position.X() + l.X()*cos - l.Y()*sin,
			a.Position.Y() + l.X()*sin + l.Y()*cos,
			a.Position.Z(),
		}
	}
	return out
}

// ProjectPoint переводит мировую точку в пиксели поверхности width x height.
// ok=false, если точка за камерой.
func ProjectPoint(viewProj mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float32(width)
	y = (1 - ndc.Y()) / 2 * float32(height)
	return x, y, true
}
