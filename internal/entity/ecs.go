// internal/entity/ecs.go
package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// ECS — хранилище сущностей: по одной упорядоченной таблице на тип компонента.
type ECS struct {
	NextID types.EntityID

	Transforms     *Table[component.Transform]
	Physics        *Table[component.Physics]
	Sprites        *Table[component.Sprite]
	Lives          *Table[component.Life]
	Weapons        *Table[component.Weapon]
	SelfDamages    *Table[component.SelfDamage]
	ContactDamages *Table[component.ContactDamage]
	Spawners       *Table[component.Spawner]
	Cameras        *Table[component.Camera]
	CameraFollows  *Table[component.CameraFollow]
	Players        *Table[component.Player]
	Enemies        *Table[component.Enemy]

	tables        []storage
	alive         map[types.EntityID]struct{}
	pendingDelete []types.EntityID
	queued        map[types.EntityID]struct{}
	pendingCreate []func(types.EntityID)
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID:         1,
		Transforms:     NewTable[component.Transform]("Transform"),
		Physics:        NewTable[component.Physics]("Physics"),
		Sprites:        NewTable[component.Sprite]("Sprite"),
		Lives:          NewTable[component.Life]("Life"),
		Weapons:        NewTable[component.Weapon]("Weapon"),
		SelfDamages:    NewTable[component.SelfDamage]("SelfDamage"),
		ContactDamages: NewTable[component.ContactDamage]("ContactDamage"),
		Spawners:       NewTable[component.Spawner]("Spawner"),
		Cameras:        NewTable[component.Camera]("Camera"),
		CameraFollows:  NewTable[component.CameraFollow]("CameraFollow"),
		Players:        NewTable[component.Player]("Player"),
		Enemies:        NewTable[component.Enemy]("Enemy"),
		alive:          make(map[types.EntityID]struct{}, 64),
		queued:         make(map[types.EntityID]struct{}, 16),
	}
	ecs.tables = []storage{
		ecs.Transforms, ecs.Physics, ecs.Sprites, ecs.Lives, ecs.Weapons,
		ecs.SelfDamages, ecs.ContactDamages, ecs.Spawners, ecs.Cameras,
		ecs.CameraFollows, ecs.Players, ecs.Enemies,
	}
	return ecs
}

// NewEntity выдаёт новый уникальный идентификатор. Идентификаторы не переиспользуются.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.alive[id] = struct{}{}
	return id
}

// Exists сообщает, жива ли сущность.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

// Count — количество живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.alive)
}

// Delete сразу удаляет сущность со всеми компонентами.
// Нельзя вызывать, пока какая-либо из её таблиц обходится, для этого есть QueueDelete.
func (ecs *ECS) Delete(id types.EntityID) {
	for _, t := range ecs.tables {
		t.Remove(id)
	}
	delete(ecs.alive, id)
}

// QueueDelete откладывает удаление до FlushDeletes. Повторная постановка игнорируется.
func (ecs *ECS) QueueDelete(id types.EntityID) {
	if _, ok := ecs.queued[id]; ok {
		return
	}
	ecs.queued[id] = struct{}{}
	ecs.pendingDelete = append(ecs.pendingDelete, id)
}

// PendingDeletes — сколько сущностей ждёт удаления.
func (ecs *ECS) PendingDeletes() int {
	return len(ecs.pendingDelete)
}

// FlushDeletes применяет отложенные удаления в порядке постановки.
// before вызывается для каждой сущности до удаления, пока компоненты ещё доступны.
// Возвращает количество удалённых живых сущностей.
func (ecs *ECS) FlushDeletes(before func(types.EntityID)) int {
	removed := 0
	for _, id := range ecs.pendingDelete {
		if !ecs.Exists(id) {
			continue
		}
		if before != nil {
			before(id)
		}
		ecs.Delete(id)
		removed++
	}
	ecs.pendingDelete = ecs.pendingDelete[:0]
	clear(ecs.queued)
	return removed
}

// QueueCreate откладывает создание сущности. fn получит новый id в FlushCreates
// и может свободно прикреплять компоненты.
func (ecs *ECS) QueueCreate(fn func(types.EntityID)) {
	ecs.pendingCreate = append(ecs.pendingCreate, fn)
}

// FlushCreates создаёт отложенные сущности в порядке постановки и возвращает их количество.
// Создания, поставленные изнутри fn, выполняются в этом же вызове.
func (ecs *ECS) FlushCreates() int {
	created := 0
	for i := 0; i < len(ecs.pendingCreate); i++ {
		ecs.pendingCreate[i](ecs.NewEntity())
		ecs.pendingCreate[i] = nil
		created++
	}
	ecs.pendingCreate = ecs.pendingCreate[:0]
	return created
}

// Clear удаляет все сущности и компоненты. Счётчик идентификаторов не сбрасывается,
// чтобы старые ссылки не начали указывать на новые сущности.
func (ecs *ECS) Clear() {
	for _, t := range ecs.tables {
		t.Clear()
	}
	clear(ecs.alive)
	clear(ecs.queued)
	ecs.pendingDelete = ecs.pendingDelete[:0]
	ecs.pendingCreate = ecs.pendingCreate[:0]
}
