// control.go — Global coordination flags for the feed pipeline
//
// Lightweight signaling shared between the ingest loop and the pinned
// drain thread: a hot flag that keeps the consumer in its spin window
// while samples are flowing, and a stop flag for graceful shutdown.
// Everything here is two words of state behind atomic access; no locks,
// no channels.

package control

import (
	"sync/atomic"
	"time"
)

var (
	hot  uint32 // 1 = samples flowing, consumer should stay hot
	stop uint32 // 1 = shut down, drain threads exit

	lastHot    int64                    // ns timestamp of the last activity signal
	cooldownNs = int64(1 * time.Second) // idle period before hot clears
)

// SignalActivity marks the pipeline active and refreshes the cooldown
// window.  Called from the ingest loop whenever a sample is accepted.
func SignalActivity() {
	atomic.StoreUint32(&hot, 1)
	atomic.StoreInt64(&lastHot, time.Now().UnixNano())
}

// PollCooldown clears the hot flag once the activity window has lapsed.
// Cheap enough to call inline from the ingest loop.
func PollCooldown() {
	if atomic.LoadUint32(&hot) == 1 &&
		time.Now().UnixNano()-atomic.LoadInt64(&lastHot) > atomic.LoadInt64(&cooldownNs) {
		atomic.StoreUint32(&hot, 0)
	}
}

// Shutdown raises the global stop flag.  Drain threads observe it and
// exit; it is never lowered again for the process lifetime.
func Shutdown() {
	atomic.StoreUint32(&stop, 1)
}

// Stopping reports whether Shutdown has been called.
func Stopping() bool {
	return atomic.LoadUint32(&stop) != 0
}

// Flags exposes the raw flag words for zero-overhead polling inside
// pinned consumer loops.  The pointers stay valid for the process
// lifetime.
func Flags() (stopFlag, hotFlag *uint32) {
	return &stop, &hot
}
