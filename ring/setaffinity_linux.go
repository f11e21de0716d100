//go:build linux && !tinygo

// setaffinity_linux.go
//
// Thin binding for sched_setaffinity(2) pinning the calling OS thread to
// one logical CPU.  Errors are swallowed on purpose: under cgroup or
// container restrictions the call may return EPERM, and the correct
// fallback is simply "no pin".

package ring

import (
	"syscall"
	"unsafe"
)

// setAffinity pins the current thread to cpu (0-based).  CPUs past the
// first 64 are ignored so the mask stays a single word.
func setAffinity(cpu int) {
	if cpu < 0 || cpu > 63 {
		return
	}
	mask := [1]uintptr{1 << uint(cpu)}
	_, _, _ = syscall.RawSyscall(
		syscall.SYS_SCHED_SETAFFINITY,
		0, // pid 0 → current thread
		uintptr(unsafe.Sizeof(mask[0])),
		uintptr(unsafe.Pointer(&mask)),
	)
}
