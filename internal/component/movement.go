// internal/component/movement.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Transform — положение сущности в мире.
// Scale.X() используется ещё и как радиус при проверке касаний.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec2
	Rotation mgl32.Vec3 // X хранит угол курса в радианах
}

// Facing возвращает единичный вектор направления "носа" по текущему курсу.
func (t *Transform) Facing() mgl32.Vec3 {
	s, c := sincos(t.Rotation.X())
	return mgl32.Vec3{-s, c, 0}
}

// Physics — модель скорости с экспоненциальным затуханием.
// Acceleration фактически играет роль скорости: позиция сдвигается на неё каждый кадр.
type Physics struct {
	Acceleration mgl32.Vec3
	Deceleration float32
}
