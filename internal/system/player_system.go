// internal/system/player_system.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/types"
)

// InputSystem переводит зажатые клавиши в тягу игрока и выстрелы.
type InputSystem struct {
	ecs *entity.ECS
	cfg config.GameplayConfig
}

func NewInputSystem(ecs *entity.ECS, cfg config.GameplayConfig) *InputSystem {
	return &InputSystem{ecs: ecs, cfg: cfg}
}

func (s *InputSystem) Update(f *Frame) {
	thrust := s.cfg.Acceleration * s.cfg.PlayerThrustFactor * f.Delta
	entity.Each4(s.ecs.Players, s.ecs.Physics, s.ecs.Transforms, s.ecs.Weapons,
		func(id types.EntityID, _ *component.Player, ph *component.Physics, tr *component.Transform, w *component.Weapon) {
			for _, key := range f.Keys {
				switch key {
				case input.KeyUp:
					ph.Acceleration = ph.Acceleration.Add(mgl32.Vec3{0, thrust, 0})
				case input.KeyDown:
					ph.Acceleration = ph.Acceleration.Add(mgl32.Vec3{0, -thrust, 0})
				case input.KeyRight:
					ph.Acceleration = ph.Acceleration.Add(mgl32.Vec3{thrust, 0, 0})
				case input.KeyLeft:
					ph.Acceleration = ph.Acceleration.Add(mgl32.Vec3{-thrust, 0, 0})
				case input.KeyFire:
					if !w.Ready(f.Now) {
						continue
					}
					w.Last = f.Now
					s.queueProjectile(f, id, *tr, ph.Acceleration)
				}
			}
		})
	// Снаряды создаются только после обхода: таблица игроков сейчас свободна.
	s.ecs.FlushCreates()
}
