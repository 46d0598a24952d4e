package ecs

import "reflect"

// Singleton provides typed access to a single component instance that is not
// associated with any entity. Use this for global game state, configuration,
// or other singleton data.
type Singleton[T any] struct {
	storage *Storage
	cached  *T
}

// NewSingleton creates a Singleton accessor for the given storage.
// If the singleton does not exist yet it is created, from the initializer
// value when one is provided, the zero value otherwise. The singleton is
// guaranteed to exist in storage after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if storage.getSingleton(t) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the Singleton to a storage.
// Called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.cached = nil
	s.refresh()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.cached == nil {
		s.refresh()
	}
	return s.cached
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) refresh() {
	if s.storage == nil {
		return
	}
	boxed := s.storage.getSingleton(reflect.TypeOf((*T)(nil)).Elem())
	if boxed != nil {
		s.cached = boxed.(*T)
	}
}
