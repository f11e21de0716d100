//go:build arm64 && !noasm && !nocgo

// relax_arm64.go
//
// ARM64 spin hint.  YIELD tells the core the thread is in a spin-wait so
// it can deprioritise it; notably effective on big.LITTLE and Apple
// Silicon parts.

package ring

/*
#ifdef __aarch64__
static inline void cpu_yield() {
    __asm__ __volatile__("yield" ::: "memory");
}
#else
#error "This file requires ARM64 architecture"
#endif
*/
import "C"

// cpuRelax emits a single YIELD instruction.
func cpuRelax() {
	C.cpu_yield()
}
