// buffer.go
//
// Overwritable SPSC buffer.  Write gives bounded, can-fail semantics for
// strict back-pressure; Overwrite gives latest-value-wins semantics for
// sample/telemetry feeds where the newest datum matters more than the
// oldest.  Both run against the same storage, so a caller can mix them
// from the one producer thread.

package ring

// Buffer is a fixed-capacity circular buffer for exactly one producer
// thread (Write/Overwrite) and one consumer thread (Read, the current
// peeks).  Anything beyond that contract is a caller bug, not a supported
// mode.
type Buffer[T any] struct {
	base[T]
}

// NewBuffer allocates a buffer with the given slot count, which must be a
// power of two greater than one.  One slot is reserved: a Buffer built
// with size N holds at most N-1 elements.
func NewBuffer[T any](size int) *Buffer[T] {
	b := &Buffer[T]{}
	b.init(size)
	return b
}

// Write stores v as the newest element.  It fails without mutating
// anything when the buffer is full, and never blocks.
func (b *Buffer[T]) Write(v T) bool {
	if b.IsFull() {
		return false
	}
	b.buf[b.head.load()&b.mask] = v
	b.head.advance()
	return true
}

// Overwrite stores v unconditionally.  When the buffer is full the oldest
// element is evicted first by advancing tail, so the buffer stays full
// with v as the newest entry.  This is the one place the producer touches
// tail; it is safe only because the eviction happens before the slot is
// reused and under the same single-producer contract.
func (b *Buffer[T]) Overwrite(v T) {
	if b.IsFull() {
		b.tail.advance() // evict oldest
	}
	b.buf[b.head.load()&b.mask] = v
	b.head.advance()
}

// Read consumes and returns the oldest element, or ok=false when empty.
// Never blocks.
func (b *Buffer[T]) Read() (T, bool) {
	var zero T
	h := b.head.load() & b.mask
	t := b.tail.load() & b.mask
	if h == t {
		return zero, false
	}
	v := b.buf[t]
	b.tail.advance()
	return v, true
}
