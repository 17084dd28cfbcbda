// internal/system/wave.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// SpawnSystem порождает врагов вокруг отслеживаемой сущности по таймеру спаунера.
type SpawnSystem struct {
	ecs *entity.ECS
	cfg config.GameplayConfig
}

func NewSpawnSystem(ecs *entity.ECS, cfg config.GameplayConfig) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, cfg: cfg}
}

func (s *SpawnSystem) Update(f *Frame) {
	s.ecs.Spawners.Each(func(_ types.EntityID, sp *component.Spawner) {
		if sp.Next > f.Now {
			return
		}
		// Если игрок уже погиб, враги появляются вокруг начала координат.
		var origin mgl32.Vec3
		if tr, ok := s.ecs.Transforms.Get(sp.Tracked); ok {
			origin = tr.Position
		}
		r := s.cfg.SpawnRadius
		position := mgl32.Vec3{
			origin.X() + f.Rng.Range(-r, r),
			origin.Y() + f.Rng.Range(-r, r),
			config.EntityDepth,
		}
		cell := config.EnemyCells[f.Rng.Intn(len(config.EnemyCells))]
		s.queueEnemy(position, cell)

		sp.Next = f.Now + f.Rng.Range(sp.Interval*s.cfg.SpawnMinFactor, sp.Interval*s.cfg.SpawnMaxFactor)
	})
	s.ecs.FlushCreates()
}

func (s *SpawnSystem) queueEnemy(position mgl32.Vec3, cell mgl32.Vec2) {
	scale := s.cfg.EnemyScale
	s.ecs.QueueCreate(func(id types.EntityID) {
		s.ecs.Enemies.Set(id, component.Enemy{})
		s.ecs.Transforms.Set(id, component.Transform{
			Position: position,
			Scale:    mgl32.Vec2{scale, scale},
		})
		s.ecs.Sprites.Set(id, component.Sprite{Color: config.EnemyColor, Cell: cell})
		s.ecs.Lives.Set(id, component.Life{Health: s.cfg.EnemyHealth})
		s.ecs.Physics.Set(id, component.Physics{})
		// Враг не исчезает от касания, его убивают только снаряды.
		s.ecs.ContactDamages.Set(id, component.ContactDamage{Damage: s.cfg.EnemyDamage})
	})
}
