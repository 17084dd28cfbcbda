package component

import "go-space-shooter/internal/types"

// Spawner периодически порождает врагов вокруг отслеживаемой сущности.
type Spawner struct {
	Interval float32        // Базовый интервал появления, сек
	Next     float32        // Время следующего появления
	Tracked  types.EntityID // Вокруг кого появляются враги (обычно игрок)
}
