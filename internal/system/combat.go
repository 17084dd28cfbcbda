// internal/system/combat.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

// ContactDamageSystem наносит урон при пересечении кругов.
// Проверяются все упорядоченные пары (атакующий, цель), кроме пар враг-враг.
// Несколько попаданий в одну цель за кадр складываются.
type ContactDamageSystem struct {
	ecs *entity.ECS
}

func NewContactDamageSystem(ecs *entity.ECS) *ContactDamageSystem {
	return &ContactDamageSystem{ecs: ecs}
}

func (s *ContactDamageSystem) Update(_ *Frame) {
	entity.Each2(s.ecs.ContactDamages, s.ecs.Transforms, func(attacker types.EntityID, cd *component.ContactDamage, atr *component.Transform) {
		entity.Each2(s.ecs.Lives, s.ecs.Transforms, func(target types.EntityID, life *component.Life, ttr *component.Transform) {
			if attacker == target {
				return
			}
			if s.ecs.Enemies.Has(attacker) && s.ecs.Enemies.Has(target) {
				return
			}
			if distanceXY(atr.Position, ttr.Position) >= atr.Scale.X()+ttr.Scale.X() {
				return
			}
			life.Health -= cd.Damage
			if cd.Once {
				s.ecs.QueueDelete(attacker)
			}
		})
	})
}

// SelfDamageSystem — постепенная потеря здоровья (время жизни снарядов).
type SelfDamageSystem struct {
	ecs *entity.ECS
}

func NewSelfDamageSystem(ecs *entity.ECS) *SelfDamageSystem {
	return &SelfDamageSystem{ecs: ecs}
}

func (s *SelfDamageSystem) Update(f *Frame) {
	entity.Each2(s.ecs.SelfDamages, s.ecs.Lives, func(_ types.EntityID, sd *component.SelfDamage, life *component.Life) {
		life.Health -= sd.Damage * f.Delta
	})
}

// DeathSystem удаляет сущности с отрицательным здоровьем вместе с теми,
// кого в этом кадре уже поставили в очередь, и начисляет очки за врагов.
type DeathSystem struct {
	ecs *entity.ECS
}

func NewDeathSystem(ecs *entity.ECS) *DeathSystem {
	return &DeathSystem{ecs: ecs}
}

func (s *DeathSystem) Update(f *Frame) {
	s.ecs.Lives.Each(func(id types.EntityID, life *component.Life) {
		if life.Health < 0 {
			s.ecs.QueueDelete(id)
		}
	})
	s.ecs.FlushDeletes(func(id types.EntityID) {
		var pos mgl32.Vec3
		if tr, ok := s.ecs.Transforms.Get(id); ok {
			pos = tr.Position
		}
		if s.ecs.Enemies.Has(id) {
			f.ScoreDelta++
			f.dispatch(event.EnemyKilled, event.EnemyKilledData{Enemy: id, Position: pos})
		}
		if s.ecs.Players.Has(id) {
			f.dispatch(event.PlayerDied, event.PlayerDiedData{Player: id, Position: pos})
		}
	})
}
