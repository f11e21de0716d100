// cursor.go
//
// One ring position counter plus its park/wake machinery.  The counter is a
// plain atomic so the non-blocking paths never touch a lock; the mutex/cond
// pair exists only for the blocking calls.  wait mirrors futex semantics:
// it returns once the counter no longer equals the value the caller
// observed, which makes the check-then-wait sequence immune to missed
// notifications.

package ring

import (
	"sync"
	"sync/atomic"
)

// cursor is an unbounded, monotonically increasing position.  Exactly one
// thread advances it; any thread may load it or park on it.
type cursor struct {
	pos     atomic.Uint64 // masked by the ring for the slot index
	waiters atomic.Int32  // parked threads; lets advance skip the lock

	mu   sync.Mutex
	cond sync.Cond
}

func (c *cursor) init() {
	c.cond.L = &c.mu
}

// load returns the current position with acquire semantics.
func (c *cursor) load() uint64 {
	return c.pos.Load()
}

// advance publishes pos+1 with release semantics, then wakes every parked
// waiter.  The waiter count check keeps the uncontended advance lock-free.
func (c *cursor) advance() {
	c.pos.Add(1)
	if c.waiters.Load() != 0 {
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	}
}

// wait parks the calling thread until the position differs from old.  It
// returns immediately when it already does.  Registration happens before
// the re-check under the lock, and advance broadcasts under the same lock,
// so an advance between the caller's snapshot and the park cannot be lost.
// A wake() broadcast or a spurious wakeup lands back here: the loop
// re-validates and parks again while the position is unchanged.
func (c *cursor) wait(old uint64) {
	c.waiters.Add(1)
	c.mu.Lock()
	for c.pos.Load() == old {
		c.cond.Wait()
	}
	c.mu.Unlock()
	c.waiters.Add(-1)
}

// wake broadcasts to every parked waiter without moving the position.
// Waiters whose condition still fails go back to sleep; this is a nudge,
// not a state change.
func (c *cursor) wake() {
	c.mu.Lock()
	c.cond.Broadcast()
	c.mu.Unlock()
}
