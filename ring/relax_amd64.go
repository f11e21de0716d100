//go:build amd64 && !noasm && !nocgo

// relax_amd64.go
//
// x86-64 spin hint.  PAUSE backs the pipeline off during busy-wait loops,
// which keeps a spinning hyperthread from starving its sibling and trims
// power draw while the ring is idle.

package ring

/*
#ifdef __x86_64__
static inline void cpu_pause() {
    __asm__ __volatile__("pause" ::: "memory");
}
#else
#error "This file requires x86-64 architecture"
#endif
*/
import "C"

// cpuRelax emits a single PAUSE instruction.
func cpuRelax() {
	C.cpu_pause()
}
