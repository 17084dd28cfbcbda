// internal/event/types.go
package event

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"go-space-shooter/internal/types"
)

const (
	ProjectileFired EventType = "ProjectileFired" // Игрок выстрелил
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	PlayerDied      EventType = "PlayerDied"      // Игрок погиб
	WorldReset      EventType = "WorldReset"      // Рестарт по клавише
)

type ProjectileFiredData struct {
	Shooter  types.EntityID
	Position mgl32.Vec3
}

type EnemyKilledData struct {
	Enemy    types.EntityID
	Position mgl32.Vec3
}

type PlayerDiedData struct {
	Player   types.EntityID
	Position mgl32.Vec3
}

type WorldResetData struct {
	Session uuid.UUID
}
