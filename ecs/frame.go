package ecs

// Frame is handed to every system during one scheduler pass.
type Frame[W any] struct {
	Tick     uint64
	World    W
	Commands *Commands
}

func newFrame[W any](tick uint64, world W) *Frame[W] {
	return &Frame[W]{
		Tick:     tick,
		World:    world,
		Commands: newCommands(),
	}
}
