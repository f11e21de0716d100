// base.go
//
// Storage core shared by Buffer and Queue.  Owns the backing slot array and
// the two position counters: head moves only under the producer, tail only
// under the consumer, and both sides read the other with acquire loads.
// One slot stays permanently reserved so a full ring never looks empty;
// usable capacity is therefore size-1.  Do not "fix" that.

package ring

// base carries the slot array and both cursors.  The padding blocks keep
// the producer and consumer cursors off each other's cache lines.
type base[T any] struct {
	_    [64]byte // isolate head from the ring header
	head cursor   // producer position; advanced on write/enqueue
	_    [64]byte // keep head and tail apart
	tail cursor   // consumer position; advanced on read/dequeue
	_    [64]byte

	mask uint64
	buf  []T
}

// init validates the capacity and wires the cursor condvars.  The receiver
// must not be copied afterwards.
func (b *base[T]) init(size int) {
	if size <= 1 || size&(size-1) != 0 {
		panic("ring: size must be >1 and a power of two")
	}
	b.mask = uint64(size - 1)
	b.buf = make([]T, size)
	b.head.init()
	b.tail.init()
}

// IsFull reports whether the ring holds size-1 elements.  The result is a
// snapshot of both counters; the other side may have moved by the time it
// returns, so treat it as advisory.
func (b *base[T]) IsFull() bool {
	h := (b.head.load() + 1) & b.mask
	t := b.tail.load() & b.mask
	return h == t
}

// IsEmpty reports whether no element is present.  Advisory, like IsFull.
func (b *base[T]) IsEmpty() bool {
	return b.head.load()&b.mask == b.tail.load()&b.mask
}

// Len returns the number of elements currently present.
func (b *base[T]) Len() int {
	h := b.head.load() & b.mask
	t := b.tail.load() & b.mask
	return int(ringDist(h, t, uint64(len(b.buf))))
}

// Cap returns the usable capacity: one less than the slot count because of
// the reserved disambiguation slot.
func (b *base[T]) Cap() int {
	return len(b.buf) - 1
}

// TryCurrent returns the oldest element without consuming it, or ok=false
// when the ring is empty.  Consumer side only.
func (b *base[T]) TryCurrent() (T, bool) {
	var zero T
	h := b.head.load()
	t := b.tail.load()
	if h&b.mask == t&b.mask {
		return zero, false
	}
	return b.buf[t&b.mask], true
}

// Current is TryCurrent that parks on the head counter while the ring is
// empty: a producer-side advance is what frees a waiting consumer.  The
// wait loop re-validates after every wakeup.
func (b *base[T]) Current() T {
	t := b.tail.load()
	for {
		h := b.head.load()
		if h&b.mask != t&b.mask {
			return b.buf[t&b.mask]
		}
		b.head.wait(h)
	}
}

// ringDist measures the tail→head distance given masked positions.
func ringDist(h, t, n uint64) uint64 {
	if h >= t {
		return h - t
	}
	return n - t + h
}
