package input

import "sync/atomic"

// DefaultQueueSize is the capacity used when none is configured.
const DefaultQueueSize = 10

// Queue is a bounded intent channel between a producer goroutine (keyboard,
// controller) and the tick loop. When full, the oldest intent is dropped.
// Push may be called from one producer goroutine; Poll from the tick loop.
type Queue struct {
	ch      chan Intent
	dropped atomic.Uint64
	closed  atomic.Bool
}

// NewQueue creates a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Queue{ch: make(chan Intent, capacity)}
}

// Push enqueues an intent, evicting the oldest one if the queue is full.
// None intents are not queued. Pushing after Close is a no-op.
func (q *Queue) Push(i Intent) {
	if i == None || q.closed.Load() {
		return
	}
	for {
		select {
		case q.ch <- i:
			return
		default:
		}
		select {
		case <-q.ch:
			q.dropped.Add(1)
		default:
		}
	}
}

// Poll returns at most one queued intent without blocking.
// It returns None when the queue is empty or closed.
func (q *Queue) Poll() Intent {
	select {
	case i, ok := <-q.ch:
		if !ok {
			return None
		}
		return i
	default:
		return None
	}
}

// Len returns the number of queued intents.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Dropped returns how many intents were evicted on overflow.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Close marks the producer side as exhausted, for example when a controller
// disconnects. Already queued intents can still be polled. Close must be
// called by the producer, never concurrently with Push.
func (q *Queue) Close() {
	if q.closed.CompareAndSwap(false, true) {
		close(q.ch)
	}
}

// Closed reports whether Close was called.
func (q *Queue) Closed() bool {
	return q.closed.Load()
}
