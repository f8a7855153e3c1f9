package ecs

// System represents a behavior that operates on the world once per tick.
// Systems can keep custom state fields that persist between ticks.
type System[W any] interface {
	Execute(frame *Frame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *Frame[W])

// Execute calls f.
func (f SystemFunc[W]) Execute(frame *Frame[W]) {
	f(frame)
}
