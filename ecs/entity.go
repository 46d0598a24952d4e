package ecs

// EntityId encodes the spawn generation (upper 32 bits) and the entity index (lower 32 bits).
// The zero value is never a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a generation and entity index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the spawn generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the entity index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
