// internal/app/world.go
package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// Populate наполняет пустое хранилище стартовым набором: игрок, спаунер и камера,
// которая следит за игроком. Возвращает id игрока.
func Populate(ecs *entity.ECS, cfg config.GameplayConfig) types.EntityID {
	player := ecs.NewEntity()
	ecs.Players.Set(player, component.Player{})
	ecs.Transforms.Set(player, component.Transform{
		Position: mgl32.Vec3{config.PlayerStartX, config.PlayerStartY, config.EntityDepth},
		Scale:    mgl32.Vec2{cfg.PlayerScale, cfg.PlayerScale},
	})
	ecs.Sprites.Set(player, component.Sprite{Color: config.PlayerColor, Cell: config.PlayerCell})
	ecs.Lives.Set(player, component.Life{Health: cfg.PlayerHealth})
	ecs.Physics.Set(player, component.Physics{Deceleration: cfg.PlayerDeceleration})
	ecs.Weapons.Set(player, component.Weapon{Repeat: cfg.WeaponRepeat})

	spawner := ecs.NewEntity()
	ecs.Spawners.Set(spawner, component.Spawner{
		Interval: cfg.SpawnInterval,
		Tracked:  player,
	})

	camera := ecs.NewEntity()
	ecs.Cameras.Set(camera, component.Camera{
		Target: mgl32.Vec3{0, 0, config.CameraTargetDepth},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   config.CameraFovy,
		Aspect: 1,
		Near:   config.CameraNear,
		Far:    config.CameraFar,
	})
	ecs.CameraFollows.Set(camera, component.CameraFollow{Entity: player})

	return player
}
