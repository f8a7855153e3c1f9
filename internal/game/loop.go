package game

import (
	"context"
	"errors"
	"time"

	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

// Presenter receives the snapshot after every tick.
type Presenter interface {
	Present(world.Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(world.Snapshot)

// Present calls f.
func (f PresenterFunc) Present(snap world.Snapshot) {
	f(snap)
}

// Run ticks the game every rate until Exit is requested or ctx is done. Each
// tick polls at most one intent from q; an empty queue ticks with None. Every
// presenter sees the post-tick snapshot. A clean exit returns nil.
func (g *Game) Run(ctx context.Context, q *input.Queue, rate time.Duration, presenters ...Presenter) error {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	present := func() {
		snap := g.Snapshot()
		for _, p := range presenters {
			p.Present(snap)
		}
	}
	present()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		err := g.Handle(q.Poll())
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
		present()
	}
}
