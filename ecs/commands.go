package ecs

// Destroyer removes an entity and every component attached to it.
type Destroyer interface {
	Destroy(e Entity) bool
}

// Commands provides a buffer for deferred operations that are executed at the end of a tick.
// This prevents structural changes while a system is still iterating a store.
type Commands struct {
	destroys []Entity
	defers   []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

// NewCommands creates an empty buffer for use outside a scheduler pass.
func NewCommands() *Commands {
	return newCommands()
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.destroys) + len(c.defers)
}

// Flush applies all queued operations, resetting the buffer state.
// Destroys run first, each entity at most once, then deferred functions in queue order.
func (c *Commands) Flush(d Destroyer) {
	seen := make(map[Entity]struct{}, len(c.destroys))

	for _, e := range c.destroys {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		d.Destroy(e)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.destroys = c.destroys[:0]
	c.defers = c.defers[:0]
}
