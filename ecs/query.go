package ecs

import (
	"iter"
	"reflect"
)

var entityIdType = reflect.TypeOf(EntityId(0))

type queryField struct {
	fieldIndex int
	compType   reflect.Type
	optional   bool
	entityId   bool
}

// Query iterates entities that hold a specific combination of components.
// The type T must be a struct whose fields are pointers to component types,
// optionally plus an ecs.EntityId field. Named pointer fields can be marked
// with the `ecs:"optional"` struct tag; embedded fields are always required.
type Query[T any] struct {
	storage *Storage
	fields  []queryField
	primary reflect.Type
}

// NewQuery creates a Query bound to the given storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.storage = storage
	q.fields = q.fields[:0]
	q.primary = nil

	var zero T
	structType := reflect.TypeOf(zero)
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			q.fields = append(q.fields, queryField{fieldIndex: i, entityId: true})
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			panic("Query struct fields must be component pointers or ecs.EntityId")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		compType := field.Type.Elem()
		q.fields = append(q.fields, queryField{
			fieldIndex: i,
			compType:   compType,
			optional:   isOptional,
		})

		if !isOptional && q.primary == nil {
			q.primary = compType
		}
	}

	if q.primary == nil {
		panic("Query must declare at least one required component field")
	}
}

// Iter returns an iterator over matching entities in spawn order.
// Structural changes during iteration must go through Commands.
func (q *Query[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		store := q.storage.stores[q.primary]
		if store == nil {
			return
		}
		for i := 0; i < len(store.ids); i++ {
			id := store.ids[i]
			result, ok := q.build(id)
			if !ok {
				continue
			}
			if !yield(result) {
				return
			}
		}
	}
}

// First returns the first matching entity in spawn order.
func (q *Query[T]) First() (T, bool) {
	var zero T
	store := q.storage.stores[q.primary]
	if store == nil {
		return zero, false
	}
	for _, id := range store.ids {
		if result, ok := q.build(id); ok {
			return result, true
		}
	}
	return zero, false
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}

func (q *Query[T]) build(id EntityId) (T, bool) {
	var result T
	rv := reflect.ValueOf(&result).Elem()
	for _, f := range q.fields {
		if f.entityId {
			rv.Field(f.fieldIndex).Set(reflect.ValueOf(id))
			continue
		}
		comp := q.storage.GetComponent(id, f.compType)
		if comp == nil {
			if f.optional {
				continue
			}
			return result, false
		}
		rv.Field(f.fieldIndex).Set(reflect.ValueOf(comp))
	}
	return result, true
}
