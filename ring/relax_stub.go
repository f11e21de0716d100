//go:build (!amd64 && !arm64) || noasm || nocgo

// relax_stub.go
//
// Portable fallback: architectures without a dedicated spin-wait hint, or
// builds with assembly/cgo disabled, get a no-op that the compiler inlines
// away.  Spin loops still work, they just spin at full tilt.

package ring

// cpuRelax is a no-op on targets without a spin-wait instruction.
func cpuRelax() {}
