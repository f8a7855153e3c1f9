package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	blockSize = 64
)

// Store holds the components of one kind, keyed by entity.
// Values are stored in fixed-size blocks so pointers returned by Get stay valid
// until the entity's component is removed or the store is compacted.
type Store[T any] struct {
	blocks    []*[blockSize]T
	owners    [][blockSize]Entity
	freeSlots []int
	nextIndex int
	index     *intmap.Map[Entity, int]
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: intmap.New[Entity, int](64),
	}
}

// Insert attaches value to e, replacing any previous value.
func (s *Store[T]) Insert(e Entity, value T) *T {
	if e == 0 {
		panic("ecs: insert for zero entity")
	}

	if slot, ok := s.index.Get(e); ok {
		ptr := &s.blocks[slot/blockSize][slot%blockSize]
		*ptr = value
		return ptr
	}

	var slot int
	if len(s.freeSlots) > 0 {
		slot = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		slot = s.nextIndex
		s.nextIndex++
		if slot/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([blockSize]T))
			s.owners = append(s.owners, [blockSize]Entity{})
		}
	}

	blockIdx := slot / blockSize
	slotIdx := slot % blockSize

	s.blocks[blockIdx][slotIdx] = value
	s.owners[blockIdx][slotIdx] = e
	s.index.Put(e, slot)
	return &s.blocks[blockIdx][slotIdx]
}

// Get returns a pointer to the component of e.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	slot, ok := s.index.Get(e)
	if !ok {
		return nil, false
	}
	return &s.blocks[slot/blockSize][slot%blockSize], true
}

// Has checks if e has a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

// Remove detaches the component of e. Returns false if there was none.
func (s *Store[T]) Remove(e Entity) bool {
	slot, ok := s.index.Get(e)
	if !ok {
		return false
	}

	blockIdx := slot / blockSize
	slotIdx := slot % blockSize

	var zero T
	s.blocks[blockIdx][slotIdx] = zero
	s.owners[blockIdx][slotIdx] = 0
	s.freeSlots = append(s.freeSlots, slot)
	s.index.Del(e)
	return true
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	return s.index.Len()
}

// Clear removes every component and releases the blocks.
func (s *Store[T]) Clear() {
	s.blocks = nil
	s.owners = nil
	s.freeSlots = nil
	s.nextIndex = 0
	s.index = intmap.New[Entity, int](64)
}

// All returns an iterator over entities and their components in slot order.
// Removing the current entity while iterating is allowed; components inserted
// during iteration may or may not be visited.
func (s *Store[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < s.nextIndex; i++ {
			blockIdx := i / blockSize
			slotIdx := i % blockSize

			if blockIdx >= len(s.owners) {
				return
			}

			owner := s.owners[blockIdx][slotIdx]
			if owner == 0 {
				continue
			}
			if !yield(owner, &s.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Each calls body for every component accepted by pred. A nil pred accepts all.
func (s *Store[T]) Each(pred func(Entity, *T) bool, body func(Entity, *T)) {
	for e, value := range s.All() {
		if pred != nil && !pred(e, value) {
			continue
		}
		body(e, value)
	}
}

// Compact reorganizes storage to remove empty slots.
// Pointers obtained before the call are invalidated.
func (s *Store[T]) Compact() {
	total := s.index.Len()
	if total == 0 {
		s.Clear()
		return
	}

	numBlocks := (total + blockSize - 1) / blockSize
	newBlocks := make([]*[blockSize]T, numBlocks)
	for i := range newBlocks {
		newBlocks[i] = new([blockSize]T)
	}
	newOwners := make([][blockSize]Entity, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < s.nextIndex; readIdx++ {
		owner := s.owners[readIdx/blockSize][readIdx%blockSize]
		if owner == 0 {
			continue
		}

		newBlocks[writePos/blockSize][writePos%blockSize] = s.blocks[readIdx/blockSize][readIdx%blockSize]
		newOwners[writePos/blockSize][writePos%blockSize] = owner
		s.index.Put(owner, writePos)
		writePos++
	}

	s.blocks = newBlocks
	s.owners = newOwners
	s.freeSlots = nil
	s.nextIndex = writePos
}
