package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/brickhop/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnOnExecuteSystem struct {
	Entities ecs.Query[struct {
		*Position
	}]
	SeenPerFrame []int
}

func (s *spawnOnExecuteSystem) Execute(frame *ecs.UpdateFrame) {
	seen := 0
	for range s.Entities.Iter() {
		seen++
	}
	s.SeenPerFrame = append(s.SeenPerFrame, seen)
	frame.Commands.Spawn(Position{X: float64(seen)})
}

// Spawns queued during a frame only become visible on the next frame.
func TestCommandsSpawnDeferredToFrameEnd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	system := &spawnOnExecuteSystem{}
	scheduler.Register(system)

	scheduler.Once(1.0)
	scheduler.Once(1.0)
	scheduler.Once(1.0)

	assert.Equal(t, []int{0, 1, 2}, system.SeenPerFrame)
	assert.Equal(t, 3, storage.EntityCount())
}

type deleteAllSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Position
	}]
}

func (s *deleteAllSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Iter() {
		frame.Commands.Delete(item.EntityId)
	}
}

func TestCommandsDeleteDuringIteration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&deleteAllSystem{})

	for i := 0; i < 5; i++ {
		storage.Spawn(Position{X: float64(i)})
	}
	assert.Equal(t, 5, storage.EntityCount())

	scheduler.Once(1.0)
	assert.Equal(t, 0, storage.EntityCount())
}

func TestCommandsFlushOrdering(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	commands := &ecs.Commands{}

	// Delete wins over a component add queued in the same frame.
	commands.Delete(id)
	commands.AddComponent(id, Health{Current: 10, Max: 10})
	commands.Spawn(Position{X: 2}, Velocity{DX: 1})
	commands.Flush(storage)

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 1, storage.EntityCount())
}

func TestCommandsAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	commands := &ecs.Commands{}
	commands.AddComponent(id, Health{Current: 10, Max: 10})
	commands.Flush(storage)
	assert.True(t, storage.HasComponent(id, reflect.TypeOf(Health{})))

	commands.RemoveComponent(id, reflect.TypeOf(Health{}))
	commands.Flush(storage)
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Health{})))
}

func TestCommandsDefer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	calls := 0
	commands := &ecs.Commands{}
	commands.Defer(func() { calls++ })
	commands.Defer(func() { calls++ })
	commands.Flush(storage)
	assert.Equal(t, 2, calls)

	// The buffer resets after a flush.
	commands.Flush(storage)
	assert.Equal(t, 2, calls)
}
