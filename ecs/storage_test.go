package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/brickhop/ecs"
	"github.com/stretchr/testify/assert"
)

// Test EntityId encoding/decoding
func TestEntityIdEncoding(t *testing.T) {
	generation := uint32(12345)
	index := uint32(67890)

	entityId := ecs.NewEntityId(generation, index)

	assert.Equal(t, generation, entityId.Generation())
	assert.Equal(t, index, entityId.Index())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, entityId.Generation())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

// Test basic storage operations
func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1.0, Y: 2.0}, &Velocity{DX: 0.5, DY: 0.5}, Score(32))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.EntityCount())
}

func TestSpawnUnregisteredComponentPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	type Unregistered struct{ V int }
	assert.Panics(t, func() {
		storage.Spawn(Unregistered{V: 1})
	})
}

func TestGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3.0, Y: 4.0}, Name{Value: "Test Entity"})

	// Get Position component
	posComp := storage.GetComponent(id, reflect.TypeOf(Position{}))
	assert.NotNil(t, posComp)
	pos := posComp.(*Position)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	// Get Name component
	nameComp := storage.GetComponent(id, reflect.TypeOf(Name{}))
	assert.NotNil(t, nameComp)
	name := nameComp.(*Name)
	assert.Equal(t, "Test Entity", name.Value)

	// Try to get non-existent component
	velocityComp := storage.GetComponent(id, reflect.TypeOf(Velocity{}))
	assert.Nil(t, velocityComp)
}

func TestSpawnByValueKeepsOwnCopy(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	original := Position{X: 1.0, Y: 1.0}
	id := storage.Spawn(original)

	original.X = 99.0

	pos := ecs.ReadComponent[Position](storage, id)
	assert.NotNil(t, pos)
	assert.Equal(t, 1.0, pos.X)
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1.0, Y: 1.0}, &Health{Current: 100, Max: 100})

	// Verify entity exists
	comp := storage.GetComponent(id, reflect.TypeOf(Position{}))
	assert.NotNil(t, comp)

	// Delete entity
	assert.True(t, storage.Delete(id))
	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.EntityCount())

	// Verify entity is gone
	comp = storage.GetComponent(id, reflect.TypeOf(Position{}))
	assert.Nil(t, comp)

	// Deleting again is a no-op
	assert.False(t, storage.Delete(id))
	assert.Equal(t, 0, storage.EntityCount())
}

func TestAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1.0, Y: 1.0})
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Health{})))

	assert.True(t, storage.AddComponent(id, Health{Current: 50, Max: 100}))
	health := ecs.ReadComponent[Health](storage, id)
	assert.NotNil(t, health)
	assert.Equal(t, 50, health.Current)

	// Adding the same component type replaces the value in place
	assert.True(t, storage.AddComponent(id, Health{Current: 75, Max: 100}))
	assert.Equal(t, 75, health.Current)

	assert.True(t, storage.RemoveComponent(id, reflect.TypeOf(Health{})))
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Health{})))
	assert.False(t, storage.RemoveComponent(id, reflect.TypeOf(Health{})))
}

func TestComponentPointersStableAcrossDeletes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id1 := storage.Spawn(&Position{X: 1.0, Y: 1.0})
	id2 := storage.Spawn(&Position{X: 2.0, Y: 2.0})
	id3 := storage.Spawn(&Position{X: 3.0, Y: 3.0})

	pos3 := ecs.ReadComponent[Position](storage, id3)

	storage.Delete(id1)
	storage.Delete(id2)

	// The surviving component is still reachable and unchanged
	assert.Same(t, pos3, ecs.ReadComponent[Position](storage, id3))
	assert.Equal(t, 3.0, pos3.X)
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.AddSingleton(Name{Value: "config"})

	var name *Name
	assert.True(t, storage.ReadSingleton(&name))
	assert.Equal(t, "config", name.Value)

	// Mutations through the pointer stick
	name.Value = "updated"
	var again *Name
	assert.True(t, storage.ReadSingleton(&again))
	assert.Equal(t, "updated", again.Value)

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)
}

func TestEntitiesEnumeration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id1 := storage.Spawn(Position{}, Velocity{})
	id2 := storage.Spawn(Health{Current: 1, Max: 1})
	id3 := storage.Spawn(Position{})

	assert.Equal(t, []ecs.EntityId{id1, id2, id3}, storage.Entities())

	types := storage.ComponentTypes(id1)
	assert.Len(t, types, 2)
	assert.Nil(t, storage.ComponentTypes(ecs.EntityId(0)))

	storage.Delete(id2)
	assert.Equal(t, []ecs.EntityId{id1, id3}, storage.Entities())
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{})
	storage.AddSingleton(Name{Value: "level"})

	stats := storage.CollectStats()
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Len(t, stats.Stores, 2)

	// Stores are sorted by type name
	assert.Equal(t, "ecs_test.Position", stats.Stores[0].ComponentType)
	assert.Equal(t, 2, stats.Stores[0].Count)
	assert.Equal(t, "ecs_test.Velocity", stats.Stores[1].ComponentType)
	assert.Equal(t, 1, stats.Stores[1].Count)

	assert.Len(t, stats.SingletonTypes, 1)
}
