// internal/system/movement.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// EnemyAISystem разгоняет врагов в сторону игрока.
type EnemyAISystem struct {
	ecs *entity.ECS
	cfg config.GameplayConfig
}

func NewEnemyAISystem(ecs *entity.ECS, cfg config.GameplayConfig) *EnemyAISystem {
	return &EnemyAISystem{ecs: ecs, cfg: cfg}
}

func (s *EnemyAISystem) Update(f *Frame) {
	steer := s.cfg.Acceleration / 10 * f.Delta
	limit := s.cfg.MaxSpeed
	entity.Each3(s.ecs.Enemies, s.ecs.Transforms, s.ecs.Physics, func(_ types.EntityID, _ *component.Enemy, tr *component.Transform, ph *component.Physics) {
		entity.Each2(s.ecs.Players, s.ecs.Transforms, func(_ types.EntityID, _ *component.Player, ptr *component.Transform) {
			toward := mgl32.Vec3{
				ptr.Position.X() - tr.Position.X(),
				ptr.Position.Y() - tr.Position.Y(),
				0,
			}
			ph.Acceleration = clampXY(ph.Acceleration.Add(toward.Mul(steer)), limit)
		})
	})
}

// PhysicsSystem интегрирует движение и разворачивает сущность по направлению полёта.
type PhysicsSystem struct {
	ecs *entity.ECS
}

func NewPhysicsSystem(ecs *entity.ECS) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs}
}

func (s *PhysicsSystem) Update(f *Frame) {
	entity.Each2(s.ecs.Physics, s.ecs.Transforms, func(_ types.EntityID, ph *component.Physics, tr *component.Transform) {
		tr.Position = tr.Position.Add(ph.Acceleration.Mul(f.Delta))
		ph.Acceleration = ph.Acceleration.Sub(ph.Acceleration.Mul(ph.Deceleration * f.Delta))

		// При нулевой скорости курс не меняется, atan2(0, 0) не вычисляется.
		planar := mgl32.Vec2{ph.Acceleration.X(), ph.Acceleration.Y()}
		if planar.Len() > 0 {
			n := planar.Normalize()
			tr.Rotation = mgl32.Vec3{-float32(math.Atan2(float64(n.X()), float64(n.Y()))), 0, 0}
		}
	})
}
