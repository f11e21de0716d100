// queue.go
//
// Blocking SPSC queue over the shared storage core.  The blocking calls
// park on the counter whose change would satisfy them: a full Enqueue
// waits on tail (the consumer frees a slot), an empty Dequeue and the peek
// family wait on head (the producer publishes an element).  Every counter
// advance broadcasts to that counter's waiters, so nobody can sleep
// through a state change; WakeAll exists for shutdown paths and changes
// nothing but the waiters' nap.

package ring

// Queue is a fixed-capacity FIFO channel between exactly one producer
// thread (Enqueue/TryEnqueue) and one consumer thread (Dequeue and the
// peek calls, which are all measured from tail).
type Queue[T any] struct {
	base[T]
}

// NewQueue allocates a queue with the given slot count, which must be a
// power of two greater than one.  Usable capacity is size-1.
func NewQueue[T any](size int) *Queue[T] {
	q := &Queue[T]{}
	q.init(size)
	return q
}

// Enqueue appends v, parking while the queue is full.  The wait loop
// re-validates fullness against the tail value it observed, so a dequeue
// landing between the check and the park is never missed.  Always
// succeeds eventually; there is no error path, only latency.
func (q *Queue[T]) Enqueue(v T) {
	h := q.head.load()
	for {
		t := q.tail.load()
		if (h+1)&q.mask != t&q.mask {
			break
		}
		q.tail.wait(t)
	}
	q.buf[h&q.mask] = v
	q.head.advance()
}

// TryEnqueue appends v unless the queue is full, in which case it returns
// false immediately with nothing mutated.
func (q *Queue[T]) TryEnqueue(v T) bool {
	h := q.head.load()
	t := q.tail.load()
	if (h+1)&q.mask == t&q.mask {
		return false
	}
	q.buf[h&q.mask] = v
	q.head.advance()
	return true
}

// Dequeue removes and returns the oldest element, parking while the queue
// is empty.
func (q *Queue[T]) Dequeue() T {
	t := q.tail.load()
	for {
		h := q.head.load()
		if h&q.mask != t&q.mask {
			break
		}
		q.head.wait(h)
	}
	v := q.buf[t&q.mask]
	q.tail.advance()
	return v
}

// TryDequeue is the non-blocking Dequeue; ok=false when empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	var zero T
	h := q.head.load() & q.mask
	t := q.tail.load() & q.mask
	if h == t {
		return zero, false
	}
	v := q.buf[t]
	q.tail.advance()
	return v, true
}

// CanPeek reports whether at least amount+1 elements are present, i.e.
// whether the element amount positions past the oldest one exists right
// now.  amount must be in [0, size); anything else panics.
func (q *Queue[T]) CanPeek(amount int) bool {
	q.checkPeek(amount)
	h := q.head.load() & q.mask
	t := q.tail.load() & q.mask
	return ringDist(h, t, uint64(len(q.buf))) > uint64(amount)
}

// TryPeek returns the element amount positions past the oldest without
// consuming anything, or ok=false when fewer than amount+1 elements are
// present.
func (q *Queue[T]) TryPeek(amount int) (T, bool) {
	q.checkPeek(amount)
	var zero T
	h := q.head.load() & q.mask
	t := q.tail.load() & q.mask
	if ringDist(h, t, uint64(len(q.buf))) <= uint64(amount) {
		return zero, false
	}
	return q.buf[(t+uint64(amount))&q.mask], true
}

// Peek is TryPeek that parks on head until amount+1 elements are present.
// Offsets are measured from tail, which only the calling (consumer) thread
// advances, so the target slot cannot move underneath a correctly used
// queue.
func (q *Queue[T]) Peek(amount int) T {
	q.checkPeek(amount)
	t := q.tail.load()
	n := uint64(len(q.buf))
	for {
		h := q.head.load()
		if ringDist(h&q.mask, t&q.mask, n) > uint64(amount) {
			return q.buf[((t&q.mask)+uint64(amount))&q.mask]
		}
		q.head.wait(h)
	}
}

// WakeAll broadcasts to every thread parked on either counter.  Queue
// state is untouched: a woken waiter re-validates its condition and goes
// back to sleep when it still fails.  A shutdown path therefore has to
// change queue state too — enqueue a sentinel, or drain — for the
// re-check to come out different.
func (q *Queue[T]) WakeAll() {
	q.head.wake()
	q.tail.wake()
}

func (q *Queue[T]) checkPeek(amount int) {
	if amount < 0 || amount >= len(q.buf) {
		panic("ring: peek amount out of range")
	}
}
