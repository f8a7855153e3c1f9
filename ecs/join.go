package ecs

import "iter"

// Pair holds the components of one entity found in two stores.
type Pair[A, B any] struct {
	A *A
	B *B
}

// Join returns an iterator over entities present in both stores.
// The first store drives iteration, so pass the smaller one first when it matters.
func Join[A, B any](a *Store[A], b *Store[B]) iter.Seq2[Entity, Pair[A, B]] {
	return func(yield func(Entity, Pair[A, B]) bool) {
		for e, va := range a.All() {
			vb, ok := b.Get(e)
			if !ok {
				continue
			}
			if !yield(e, Pair[A, B]{A: va, B: vb}) {
				return
			}
		}
	}
}

// Filter returns the entities of s accepted by pred, collected up front.
// Use it when the loop body destroys entities of the same store.
func Filter[T any](s *Store[T], pred func(Entity, *T) bool) []Entity {
	var out []Entity
	for e, v := range s.All() {
		if pred == nil || pred(e, v) {
			out = append(out, e)
		}
	}
	return out
}
