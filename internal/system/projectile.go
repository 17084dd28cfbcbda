// internal/system/projectile.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

// queueProjectile ставит в очередь снаряд, вылетающий из носа стрелка.
// Снаряд наследует текущую скорость стрелка и гаснет сам через SelfDamage.
func (s *InputSystem) queueProjectile(f *Frame, shooter types.EntityID, from component.Transform, inherited mgl32.Vec3) {
	facing := from.Facing()
	position := from.Position.Add(facing.Mul(s.cfg.ProjectileOffset))
	velocity := facing.Mul(s.cfg.ProjectileSpeed).Add(inherited)
	scale := s.cfg.ProjectileScale

	s.ecs.QueueCreate(func(id types.EntityID) {
		s.ecs.Transforms.Set(id, component.Transform{
			Position: position,
			Scale:    mgl32.Vec2{scale, scale},
			Rotation: from.Rotation,
		})
		s.ecs.Physics.Set(id, component.Physics{
			Acceleration: velocity,
			Deceleration: s.cfg.ProjectileDeceleration,
		})
		s.ecs.Sprites.Set(id, component.Sprite{Color: config.ProjectileColor, Cell: config.ProjectileCell})
		s.ecs.SelfDamages.Set(id, component.SelfDamage{Damage: s.cfg.ProjectileSelfDamage})
		s.ecs.Lives.Set(id, component.Life{Health: s.cfg.ProjectileHealth})
		s.ecs.ContactDamages.Set(id, component.ContactDamage{Damage: s.cfg.ProjectileDamage, Once: true})

		f.dispatch(event.ProjectileFired, event.ProjectileFiredData{Shooter: shooter, Position: position})
	})
}
