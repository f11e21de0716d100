// pinned_consumer.go
//
// Dedicated-thread queue drain for latency-sensitive consumers.
//
//   • Runs on its own OS thread pinned to `core`.
//   • Hot-spins (tight loop, no cpuRelax) while work arrived within
//     hotTimeout or the producer holds the hot flag at 1.
//   • Past the grace window with hot == 0 it falls to a cold spin:
//     cpuRelax every miss, with the miss counter kept as the slot for a
//     deeper hardware wait on parts that have one.
//   • Exits only when *stop is set and closes done exactly once.
//
// This deliberately bypasses the queue's parking path: a pinned drain
// exists precisely for workloads where futex-style sleep/wake latency is
// the thing being avoided.
//
// hot flag contract:
//     Producer             Consumer
//     --------             ------------------------------
//     Store 1  ─────────▶  read (wake / stay hot-spin)
//     ...enqueue items...
//     (optionally) Store 0  ◀─ consumer never writes

package ring

import (
	"runtime"
	"sync/atomic"
	"time"
)

const (
	spinBudget = 256              // misses before the cold path resets
	hotTimeout = 15 * time.Second // hot-spin grace after the last item
)

// PinnedConsumer drains q through fn until *stop is set.
func PinnedConsumer[T any](
	core int,
	q *Queue[T],
	stop, hot *uint32,
	fn func(T),
	done chan<- struct{},
) {
	go func() {
		runtime.LockOSThread()
		setAffinity(core) // no-op off Linux
		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()

		last := time.Now() // last successful dequeue
		miss := 0

		for {
			// fast path: drain one element and stay hot
			if v, ok := q.TryDequeue(); ok {
				fn(v)
				last, miss = time.Now(), 0
				continue
			}

			if atomic.LoadUint32(stop) != 0 {
				return
			}

			hotSpin := atomic.LoadUint32(hot) != 0 ||
				time.Since(last) <= hotTimeout
			if hotSpin {
				continue
			}

			// cold path: be polite to the core
			if miss++; miss >= spinBudget {
				miss = 0
			}
			cpuRelax()
		}
	}()
}
