package control

import (
	"sync/atomic"
	"testing"
	"time"
)

// reset puts the package globals back to a known state between tests;
// the real process never does this, but tests share the process.
func reset() {
	atomic.StoreUint32(&hot, 0)
	atomic.StoreUint32(&stop, 0)
	atomic.StoreInt64(&lastHot, 0)
	atomic.StoreInt64(&cooldownNs, int64(time.Second))
}

// TestSignalActivitySetsHot checks the hot flag raises and the timestamp
// moves.
func TestSignalActivitySetsHot(t *testing.T) {
	reset()
	SignalActivity()
	_, hotFlag := Flags()
	if atomic.LoadUint32(hotFlag) != 1 {
		t.Fatal("SignalActivity did not raise the hot flag")
	}
	if atomic.LoadInt64(&lastHot) == 0 {
		t.Fatal("SignalActivity did not record a timestamp")
	}
}

// TestPollCooldownClearsAfterWindow shrinks the window and verifies the
// flag drops only once it lapses.
func TestPollCooldownClearsAfterWindow(t *testing.T) {
	reset()
	atomic.StoreInt64(&cooldownNs, int64(5*time.Millisecond))

	SignalActivity()
	PollCooldown()
	_, hotFlag := Flags()
	if atomic.LoadUint32(hotFlag) != 1 {
		t.Fatal("PollCooldown cleared hot inside the window")
	}

	time.Sleep(10 * time.Millisecond)
	PollCooldown()
	if atomic.LoadUint32(hotFlag) != 0 {
		t.Fatal("PollCooldown did not clear hot after the window")
	}
}

// TestShutdownLatches checks Stopping flips once and the flag pointer
// aliases the same word.
func TestShutdownLatches(t *testing.T) {
	reset()
	if Stopping() {
		t.Fatal("fresh state reports stopping")
	}
	Shutdown()
	if !Stopping() {
		t.Fatal("Shutdown did not latch")
	}
	stopFlag, _ := Flags()
	if atomic.LoadUint32(stopFlag) != 1 {
		t.Fatal("Flags() does not alias the stop word")
	}
}
