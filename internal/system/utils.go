// internal/system/utils.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/utils"
)

// distanceXY — расстояние в плоскости XY. Глубина при проверке касаний не учитывается.
func distanceXY(a, b mgl32.Vec3) float32 {
	return mgl32.Vec2{a.X() - b.X(), a.Y() - b.Y()}.Len()
}

// clampXY ограничивает каждую ось по модулю и обнуляет Z.
func clampXY(v mgl32.Vec3, limit float32) mgl32.Vec3 {
	return mgl32.Vec3{
		utils.Clamp(v.X(), -limit, limit),
		utils.Clamp(v.Y(), -limit, limit),
		0,
	}
}

// lerpVec3 — покомпонентная линейная интерполяция.
func lerpVec3(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		utils.Lerp(from.X(), to.X(), t),
		utils.Lerp(from.Y(), to.Y(), t),
		utils.Lerp(from.Z(), to.Z(), t),
	}
}
