package ring

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// TestQueueStressBlocking runs a real producer/consumer pair through the
// blocking calls with a queue small enough that both sides park
// constantly.  Order and integrity must survive millions of wraparounds.
func TestQueueStressBlocking(t *testing.T) {
	const total = 1 << 17
	q := NewQueue[int](8)

	errs := make(chan string, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			if v := q.Dequeue(); v != i {
				select {
				case errs <- "out of order at " + itoa(i):
				default:
				}
				return
			}
		}
	}()

	for i := 0; i < total; i++ {
		q.Enqueue(i)
	}

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("stress run did not finish; likely a lost wakeup")
	}
	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
	if !q.IsEmpty() {
		t.Fatalf("queue not empty after balanced run: Len() = %d", q.Len())
	}
}

// TestQueueStressTry drives the non-blocking calls with spin retries so
// the full and empty branches are both hammered.
func TestQueueStressTry(t *testing.T) {
	const total = 1 << 16
	q := NewQueue[uint64](16)

	var sumOut atomic.Uint64
	done := make(chan struct{})

	go func() {
		defer close(done)
		for n := 0; n < total; {
			v, ok := q.TryDequeue()
			if !ok {
				runtime.Gosched()
				continue
			}
			sumOut.Add(v)
			n++
		}
	}()

	var sumIn uint64
	for i := uint64(1); i <= total; i++ {
		for !q.TryEnqueue(i) {
			runtime.Gosched()
		}
		sumIn += i
	}

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("try-path stress run did not finish")
	}
	if got := sumOut.Load(); got != sumIn {
		t.Fatalf("checksum mismatch: consumed %d, produced %d", got, sumIn)
	}
}

// TestBufferStressSPSC pairs Write against Read across goroutines; the
// bounded write path applies back-pressure via spin retry.
func TestBufferStressSPSC(t *testing.T) {
	const total = 1 << 16
	b := NewBuffer[int](8)

	bad := make(chan int, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		want := 0
		for want < total {
			v, ok := b.Read()
			if !ok {
				runtime.Gosched()
				continue
			}
			if v != want {
				select {
				case bad <- v:
				default:
				}
				return
			}
			want++
		}
	}()

	for i := 0; i < total; i++ {
		for !b.Write(i) {
			runtime.Gosched()
		}
	}

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("buffer stress run did not finish")
	}
	select {
	case v := <-bad:
		t.Fatalf("consumer saw out-of-order value %d", v)
	default:
	}
}

// itoa avoids pulling strconv into a hot failure path inside the stress
// goroutine.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
