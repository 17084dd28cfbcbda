package component

import (
	"math"

	"go-space-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera — параметры вида. +Z направлен "в экран".
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Fovy   float32 // в градусах
	Aspect float32
	Near   float32
	Far    float32
}

// View строит матрицу вида. mgl32 правосторонняя, поэтому X отражаем,
// чтобы при взгляде вдоль +Z мировой +X оставался справа на экране.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.Scale3D(-1, 1, 1).Mul4(mgl32.LookAtV(c.Eye, c.Target, c.Up))
}

// Projection строит перспективу для поверхности width x height.
// Если размеры неизвестны, используется Aspect камеры.
func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := c.Aspect
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// Position — положение глаза камеры.
func (c *Camera) Position() mgl32.Vec3 {
	return c.Eye
}

// ViewProjection = Projection * View.
func (c *Camera) ViewProjection(width, height int) mgl32.Mat4 {
	return c.Projection(width, height).Mul4(c.View())
}

// CameraFollow привязывает камеру к сущности.
type CameraFollow struct {
	Entity types.EntityID
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
