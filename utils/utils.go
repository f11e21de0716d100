package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// PrintWarning writes msg straight to stderr (fd 2) with a single raw
// write, bypassing fmt and any buffering.  Cold paths only.
func PrintWarning(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = syscall.Write(2, unsafe.Slice(unsafe.StringData(msg), len(msg)))
}

// Itoa formats an int without reaching for strconv.  Covers the full
// int64 range; log paths are the only callers.
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// JSON Micro-Scanners — For Field Detection & Slice Extraction
///////////////////////////////////////////////////////////////////////////////

// FindQuote locates the next '"' after a ':' in `"field":"value"` patterns.
// It rejects malformed cases with non-space garbage after ':'.
//
//go:nosplit
//go:inline
func FindQuote(b []byte) int {
	for i := 0; i < len(b)-1; i++ {
		if b[i] == ':' {
			for j := i + 1; j < len(b); j++ {
				switch c := b[j]; {
				case c == '"':
					return j
				case c > ' ': // malformed — non-whitespace, non-quote
					return -1
				}
			}
		}
	}
	return -1
}

// SliceASCII returns the quoted string value starting at index i.
// It expects b[i] to be a '"' and returns the span between quotes.
//
//go:nosplit
//go:inline
func SliceASCII(b []byte, i int) []byte {
	if i < 0 || i >= len(b) || b[i] != '"' {
		return nil
	}
	for j := i + 1; j < len(b); j++ {
		if b[j] == '"' {
			return b[i+1 : j]
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Fast Loaders & Mixers
///////////////////////////////////////////////////////////////////////////////

// Load64 reads an unaligned 64-bit word from a byte slice.
//
//go:nosplit
//go:inline
func Load64(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[0]))
}

// Mix64 applies the 64-bit avalanche finisher (splitmix/murmur style) so
// sequential keys spread across the whole index space.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// HashBytes folds an arbitrary byte string into a mixed 64-bit value.
// Not cryptographic; slot addressing only.
func HashBytes(b []byte) uint64 {
	h := uint64(len(b))
	for len(b) >= 8 {
		h = Mix64(h ^ Load64(b))
		b = b[8:]
	}
	for _, c := range b {
		h = h<<8 | uint64(c)
	}
	return Mix64(h)
}
