package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// Storage is the main ECS storage interface
type Storage struct {
	registry   *ComponentRegistry
	stores     map[reflect.Type]*componentStore
	entities   *intmap.Map[EntityId, []reflect.Type]
	singletons map[reflect.Type]any
	nextIndex  uint32
	generation uint32
	count      int
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]*componentStore),
		entities:   intmap.New[EntityId, []reflect.Type](256),
		singletons: make(map[reflect.Type]any),
		generation: 1,
	}
}

// normalizeComponent accepts a component given either by value or by pointer
// and returns its concrete type together with a boxed pointer to a fresh copy.
func normalizeComponent(component any) (reflect.Type, any) {
	v := reflect.ValueOf(component)
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		v = v.Elem()
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	return t, ptr.Interface()
}

// Spawn creates a new entity holding the given components and returns its id.
// Components may be passed by value or by pointer; either way the storage
// keeps its own copy. Panics if any component type is not registered.
func (s *Storage) Spawn(components ...any) EntityId {
	s.nextIndex++
	if s.nextIndex == 0 {
		s.generation++
		s.nextIndex = 1
	}
	id := NewEntityId(s.generation, s.nextIndex)

	types := make([]reflect.Type, 0, len(components))
	for _, component := range components {
		t, ptr := normalizeComponent(component)
		if !s.registry.registered(t) {
			panic("component type " + t.String() + " not registered")
		}
		store := s.stores[t]
		if store == nil {
			store = newComponentStore()
			s.stores[t] = store
		}
		store.append(id, ptr)
		types = append(types, t)
	}

	s.entities.Put(id, types)
	s.count++
	return id
}

// Delete removes an entity and all of its components.
// Returns false if the entity does not exist.
func (s *Storage) Delete(id EntityId) bool {
	types, ok := s.entities.Get(id)
	if !ok {
		return false
	}
	for _, t := range types {
		s.stores[t].remove(id)
	}
	s.entities.Del(id)
	s.count--
	return true
}

// Alive reports whether the entity currently exists in the storage.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.entities.Get(id)
	return ok
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.count
}

// GetComponent returns the component of the given type for the entity,
// or nil if the entity does not exist or does not hold that component.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store := s.stores[compType]
	if store == nil {
		return nil
	}
	return store.get(id)
}

// HasComponent reports whether the entity holds a component of the given type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// AddComponent attaches a component to an existing entity, replacing any
// previous component of the same type. Returns false if the entity is gone.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	types, ok := s.entities.Get(id)
	if !ok {
		return false
	}

	t, ptr := normalizeComponent(component)
	if !s.registry.registered(t) {
		panic("component type " + t.String() + " not registered")
	}

	store := s.stores[t]
	if store == nil {
		store = newComponentStore()
		s.stores[t] = store
	}

	if existing := store.get(id); existing != nil {
		reflect.ValueOf(existing).Elem().Set(reflect.ValueOf(ptr).Elem())
		return true
	}

	store.append(id, ptr)
	s.entities.Put(id, append(types, t))
	return true
}

// RemoveComponent detaches a component from an entity.
// Returns false if the entity or the component is missing.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	types, ok := s.entities.Get(id)
	if !ok {
		return false
	}
	store := s.stores[compType]
	if store == nil || !store.remove(id) {
		return false
	}
	for i, t := range types {
		if t == compType {
			s.entities.Put(id, append(types[:i], types[i+1:]...))
			break
		}
	}
	return true
}

// AddSingleton stores a single component instance not associated with any
// entity. There is at most one singleton per component type.
func (s *Storage) AddSingleton(component any) {
	t, ptr := normalizeComponent(component)
	s.singletons[t] = ptr
}

func (s *Storage) getSingleton(t reflect.Type) any {
	return s.singletons[t]
}

// ReadSingleton loads a singleton into target, which must be a pointer to a
// pointer of the singleton's type (e.g. var cfg *Config; storage.ReadSingleton(&cfg)).
// Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Pointer {
		panic("ReadSingleton target must be a pointer to a component pointer")
	}
	boxed := s.singletons[v.Elem().Type().Elem()]
	if boxed == nil {
		return false
	}
	v.Elem().Set(reflect.ValueOf(boxed))
	return true
}

// Entities returns every live entity id in ascending order.
// Intended for tooling; the per-frame path iterates through queries instead.
func (s *Storage) Entities() []EntityId {
	ids := make([]EntityId, 0, s.count)
	seen := make(map[EntityId]bool, s.count)
	for _, store := range s.stores {
		for _, id := range store.ids {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ComponentTypes returns the component types an entity holds, or nil if the
// entity does not exist.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	types, ok := s.entities.Get(id)
	if !ok {
		return nil
	}
	return types
}

// ComponentReader exposes read access to entity components.
type ComponentReader interface {
	GetComponent(id EntityId, compType reflect.Type) any
}

// ReadComponent returns a typed pointer to an entity's component,
// or nil if the entity does not hold one.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeOf((*T)(nil)).Elem())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}

// StoreStats describes one component store.
type StoreStats struct {
	ComponentType string
	Count         int
}

// StorageStats is a point-in-time summary of the storage contents.
type StorageStats struct {
	TotalEntityCount int
	Stores           []StoreStats
	SingletonTypes   []string
}

// CollectStats gathers storage statistics, with stores and singletons
// sorted by type name for stable output.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.EntityCount(),
	}
	for t, store := range s.stores {
		stats.Stores = append(stats.Stores, StoreStats{
			ComponentType: t.String(),
			Count:         store.len(),
		})
	}
	sort.Slice(stats.Stores, func(i, j int) bool {
		return stats.Stores[i].ComponentType < stats.Stores[j].ComponentType
	})
	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)
	return stats
}
