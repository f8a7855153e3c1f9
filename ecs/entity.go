package ecs

// Entity encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero Entity is never handed out.
type Entity uint64

// NewEntity creates an Entity from a generation and slot index
func NewEntity(generation uint32, index uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Entities allocates entity identifiers. Destroyed slots are reused with a
// bumped generation so that a stale Entity never becomes alive again.
type Entities struct {
	generations []uint32
	alive       []bool
	freeSlots   []uint32
	count       int
}

// NewEntities creates an empty allocator.
func NewEntities() *Entities {
	return &Entities{}
}

// Create returns a fresh live entity.
func (es *Entities) Create() Entity {
	es.count++

	if len(es.freeSlots) > 0 {
		index := es.freeSlots[len(es.freeSlots)-1]
		es.freeSlots = es.freeSlots[:len(es.freeSlots)-1]
		es.alive[index] = true
		return NewEntity(es.generations[index], index)
	}

	index := uint32(len(es.generations))
	// generation starts at 1 so the zero Entity stays invalid
	es.generations = append(es.generations, 1)
	es.alive = append(es.alive, true)
	return NewEntity(1, index)
}

// Alive reports whether e was created and has not been destroyed since.
func (es *Entities) Alive(e Entity) bool {
	index := e.Index()
	if int(index) >= len(es.generations) {
		return false
	}
	return es.alive[index] && es.generations[index] == e.Generation()
}

// Destroy releases the slot of e. Returns false if e was not alive.
func (es *Entities) Destroy(e Entity) bool {
	if !es.Alive(e) {
		return false
	}

	index := e.Index()
	es.alive[index] = false
	es.generations[index]++
	if es.generations[index] == 0 {
		es.generations[index] = 1
	}
	es.freeSlots = append(es.freeSlots, index)
	es.count--
	return true
}

// Len returns the number of live entities.
func (es *Entities) Len() int {
	return es.count
}

// Reset forgets every entity. Generations are kept so ids issued before the
// reset stay dead.
func (es *Entities) Reset() {
	es.freeSlots = es.freeSlots[:0]
	for i := range es.generations {
		if es.alive[i] {
			es.alive[i] = false
			es.generations[i]++
			if es.generations[i] == 0 {
				es.generations[i] = 1
			}
		}
		es.freeSlots = append(es.freeSlots, uint32(len(es.generations)-1-i))
	}
	es.count = 0
}

// Iter returns an iterator over all live entities in slot order.
func (es *Entities) Iter() func(yield func(Entity) bool) {
	return func(yield func(Entity) bool) {
		for i, alive := range es.alive {
			if !alive {
				continue
			}
			if !yield(NewEntity(es.generations[i], uint32(i))) {
				return
			}
		}
	}
}
