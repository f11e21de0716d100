//go:build !linux || tinygo

// setaffinity_stub.go
//
// No-op affinity for platforms without sched_setaffinity.  Keeps the call
// sites identical everywhere; the scheduler just stays in charge.

package ring

// setAffinity is a no-op on unsupported platforms.
func setAffinity(cpu int) {}
