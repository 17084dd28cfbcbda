package entity

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.Less(t, a, b)
	assert.False(t, a.IsNone())
	assert.Equal(t, 2, ecs.Count())

	ecs.Clear()
	c := ecs.NewEntity()
	assert.Greater(t, c, b, "ids must not be reused after Clear")
}

func TestGetMissingIsAbsent(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()

	life, ok := ecs.Lives.Get(id)
	assert.False(t, ok)
	assert.Nil(t, life)

	ecs.Delete(id)
	_, ok = ecs.Transforms.Get(id)
	assert.False(t, ok)
	_, ok = ecs.Transforms.Get(types.EntityID(12345))
	assert.False(t, ok)
}

func TestSetGetMutateThroughPointer(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Lives.Set(id, component.Life{Health: 10})

	life, ok := ecs.Lives.Get(id)
	require.True(t, ok)
	life.Health -= 3

	again, _ := ecs.Lives.Get(id)
	assert.Equal(t, float32(7), again.Health)

	ecs.Lives.Set(id, component.Life{Health: 1})
	assert.Equal(t, 1, ecs.Lives.Len())
}

func TestRemoveKeepsInsertionOrder(t *testing.T) {
	ecs := NewECS()
	ids := make([]types.EntityID, 5)
	for i := range ids {
		ids[i] = ecs.NewEntity()
		ecs.Lives.Set(ids[i], component.Life{Health: float32(i)})
	}
	ecs.Delete(ids[1])
	ecs.Delete(ids[3])

	assert.Equal(t, []types.EntityID{ids[0], ids[2], ids[4]}, ecs.Lives.IDs())
	for _, id := range []types.EntityID{ids[0], ids[2], ids[4]} {
		life, ok := ecs.Lives.Get(id)
		require.True(t, ok)
		assert.Equal(t, float32(id-ids[0]), life.Health)
	}
}

func TestEachJoinsOnlyFullMatches(t *testing.T) {
	ecs := NewECS()
	both := ecs.NewEntity()
	onlyTransform := ecs.NewEntity()
	onlySprite := ecs.NewEntity()
	ecs.Transforms.Set(both, component.Transform{})
	ecs.Sprites.Set(both, component.Sprite{})
	ecs.Transforms.Set(onlyTransform, component.Transform{})
	ecs.Sprites.Set(onlySprite, component.Sprite{})

	var seen []types.EntityID
	Each2(ecs.Transforms, ecs.Sprites, func(id types.EntityID, _ *component.Transform, _ *component.Sprite) {
		seen = append(seen, id)
	})
	assert.Equal(t, []types.EntityID{both}, seen)
}

func TestEach4(t *testing.T) {
	ecs := NewECS()
	player := ecs.NewEntity()
	ecs.Players.Set(player, component.Player{})
	ecs.Physics.Set(player, component.Physics{})
	ecs.Transforms.Set(player, component.Transform{Position: mgl32.Vec3{1, 2, 3}})
	ecs.Weapons.Set(player, component.Weapon{Repeat: 0.2})

	other := ecs.NewEntity()
	ecs.Players.Set(other, component.Player{})
	ecs.Physics.Set(other, component.Physics{})

	count := 0
	Each4(ecs.Players, ecs.Physics, ecs.Transforms, ecs.Weapons,
		func(id types.EntityID, _ *component.Player, _ *component.Physics, tr *component.Transform, w *component.Weapon) {
			count++
			assert.Equal(t, player, id)
			assert.Equal(t, float32(2), tr.Position.Y())
			assert.Equal(t, float32(0.2), w.Repeat)
		})
	assert.Equal(t, 1, count)
}

func TestStructuralMutationDuringIterationPanics(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Lives.Set(id, component.Life{Health: -1})

	assert.Panics(t, func() {
		ecs.Lives.Each(func(id types.EntityID, _ *component.Life) {
			ecs.Delete(id)
		})
	})
	assert.Panics(t, func() {
		ecs.Lives.Each(func(types.EntityID, *component.Life) {
			ecs.Lives.Set(ecs.NewEntity(), component.Life{})
		})
	})
	assert.NotPanics(t, func() {
		ecs.Lives.Each(func(id types.EntityID, _ *component.Life) {
			ecs.Lives.Set(id, component.Life{Health: 5})
			ecs.QueueDelete(id)
		})
	})
	assert.Equal(t, 1, ecs.FlushDeletes(nil))
	assert.False(t, ecs.Exists(id))
}

func TestQueueDeleteDeduplicates(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies.Set(id, component.Enemy{})
	ecs.QueueDelete(id)
	ecs.QueueDelete(id)
	assert.Equal(t, 1, ecs.PendingDeletes())

	calls := 0
	removed := ecs.FlushDeletes(func(got types.EntityID) {
		calls++
		assert.True(t, ecs.Enemies.Has(got), "components must still be readable in the callback")
	})
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, ecs.PendingDeletes())

	ecs.QueueDelete(id)
	assert.Equal(t, 0, ecs.FlushDeletes(nil), "deleting a dead entity is a no-op")
}

func TestCursorResumesWhereItStopped(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Transforms.Set(id, component.Transform{})
		if i != 2 {
			ecs.Sprites.Set(id, component.Sprite{})
			want = append(want, id)
		}
	}

	cur := NewCursor2(ecs.Transforms, ecs.Sprites)
	var got []types.EntityID
	for i := 0; i < 2; i++ {
		id, _, _, ok := cur.Next()
		require.True(t, ok)
		got = append(got, id)
	}
	for {
		id, _, _, ok := cur.Next()
		if !ok {
			break
		}
		got = append(got, id)
	}
	assert.Equal(t, want, got)
	_, _, _, ok := cur.Next()
	assert.False(t, ok)
}

func TestClearDropsEverything(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 3; i++ {
		id := ecs.NewEntity()
		ecs.Transforms.Set(id, component.Transform{})
		ecs.Players.Set(id, component.Player{})
	}
	ecs.QueueDelete(1)
	ecs.Clear()
	assert.Equal(t, 0, ecs.Count())
	assert.Equal(t, 0, ecs.Transforms.Len())
	assert.Equal(t, 0, ecs.Players.Len())
	assert.Equal(t, 0, ecs.PendingDeletes())
}

func TestQueueCreateRunsAfterIteration(t *testing.T) {
	ecs := NewECS()
	owner := ecs.NewEntity()
	ecs.Weapons.Set(owner, component.Weapon{Repeat: 1})

	ecs.Weapons.Each(func(types.EntityID, *component.Weapon) {
		ecs.QueueCreate(func(id types.EntityID) {
			ecs.Weapons.Set(id, component.Weapon{Repeat: 2})
		})
	})
	assert.Equal(t, 1, ecs.Weapons.Len(), "creation must wait for the flush")

	assert.Equal(t, 1, ecs.FlushCreates())
	assert.Equal(t, 2, ecs.Weapons.Len())
	assert.Equal(t, 2, ecs.Count())
	assert.Equal(t, 0, ecs.FlushCreates())
}
