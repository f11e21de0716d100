// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: spill.go — Producer-side overflow backlog
//
// Purpose:
//   - Fronts a bounded ring queue with an unbounded (capped) FIFO backlog
//     so a slow consumer causes buffering, then drops — never blocking of
//     the ingest loop and never reordering.
//
// Notes:
//   - FIFO across both tiers: once anything sits in the backlog, new
//     samples go behind it, not straight into the ring.
//
// ⚠️ Single-goroutine use on the producer side, same as the ring's
//    producer contract.
// ─────────────────────────────────────────────────────────────────────────────

package spill

import (
	"main/ring"

	"github.com/eapache/queue"
)

// Writer pushes into a bounded ring, parking overflow in a backlog.
type Writer[T any] struct {
	ring    *ring.Queue[T]
	backlog *queue.Queue
	max     int
	dropped uint64
}

// NewWriter wraps r with a backlog capped at maxBacklog entries.
func NewWriter[T any](r *ring.Queue[T], maxBacklog int) *Writer[T] {
	return &Writer[T]{
		ring:    r,
		backlog: queue.New(),
		max:     maxBacklog,
	}
}

// Offer hands v to the ring, spilling to the backlog when the ring is
// full.  Returns false when the backlog cap is also exhausted and v was
// dropped.
func (w *Writer[T]) Offer(v T) bool {
	w.Drain()
	if w.backlog.Length() == 0 && w.ring.TryEnqueue(v) {
		return true
	}
	if w.backlog.Length() >= w.max {
		w.dropped++
		return false
	}
	w.backlog.Add(v)
	return true
}

// Drain moves backlog entries into the ring while space lasts and reports
// how many moved.
func (w *Writer[T]) Drain() int {
	n := 0
	for w.backlog.Length() > 0 {
		v := w.backlog.Peek().(T)
		if !w.ring.TryEnqueue(v) {
			break
		}
		w.backlog.Remove()
		n++
	}
	return n
}

// Backlog returns the number of samples waiting behind the ring.
func (w *Writer[T]) Backlog() int {
	return w.backlog.Length()
}

// Dropped returns how many samples were discarded at the backlog cap.
func (w *Writer[T]) Dropped() uint64 {
	return w.dropped
}
