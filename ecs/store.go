package ecs

import "github.com/kamstrup/intmap"

// componentStore holds every instance of a single component type in spawn
// order. Rows are boxed *T values; the index map resolves an entity id to
// its row. Removal splices the row out and reindexes the tail, so iteration
// order of survivors is stable.
type componentStore struct {
	ids   []EntityId
	rows  []any
	index *intmap.Map[EntityId, int]
}

func newComponentStore() *componentStore {
	return &componentStore{
		index: intmap.New[EntityId, int](64),
	}
}

func (cs *componentStore) append(id EntityId, ptr any) {
	cs.index.Put(id, len(cs.ids))
	cs.ids = append(cs.ids, id)
	cs.rows = append(cs.rows, ptr)
}

func (cs *componentStore) get(id EntityId) any {
	row, ok := cs.index.Get(id)
	if !ok {
		return nil
	}
	return cs.rows[row]
}

func (cs *componentStore) remove(id EntityId) bool {
	row, ok := cs.index.Get(id)
	if !ok {
		return false
	}

	cs.ids = append(cs.ids[:row], cs.ids[row+1:]...)
	cs.rows = append(cs.rows[:row], cs.rows[row+1:]...)
	cs.index.Del(id)

	// Reindex everything behind the removed row
	for i := row; i < len(cs.ids); i++ {
		cs.index.Put(cs.ids[i], i)
	}
	return true
}

func (cs *componentStore) len() int {
	return len(cs.ids)
}
