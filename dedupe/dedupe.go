// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: dedupe.go — Replay detection for feed samples
//
// Purpose:
//   - Rejects samples already seen, keyed by (source, seq) plus a 128-bit
//     payload fingerprint, inside a fixed power-of-two slot ring.
//
// Notes:
//   - Direct-mapped: a colliding identity simply overwrites the slot, so
//     false "new" answers are possible and fine; false "duplicate"
//     answers are not, which the fingerprint comparison guarantees.
//
// ⚠️ Not thread-safe.  The ingest loop owns the Deduper exclusively.
// ─────────────────────────────────────────────────────────────────────────────

package dedupe

import (
	"main/constants"
	"main/utils"

	"golang.org/x/crypto/blake2b"
)

// slot remembers one sample identity.  Sized to a cache line.
type slot struct {
	src   uint64 // hash of the source name
	seq   uint64 // per-source sequence number
	age   uint64 // sequence horizon when the entry landed
	tagHi uint64 // fingerprint, high half
	tagLo uint64 // fingerprint, low half
	_     [3]uint64
}

// Deduper is a direct-mapped table of recently seen sample identities.
type Deduper struct {
	buf [1 << constants.DedupeBits]slot
}

// Fingerprint reduces a payload to a 128-bit tag via BLAKE2b.
func Fingerprint(payload []byte) (hi, lo uint64) {
	sum := blake2b.Sum256(payload)
	return utils.Load64(sum[0:8]), utils.Load64(sum[8:16])
}

// Check reports whether the (src, seq, tag) identity is new and should be
// processed, recording it when so.  horizon is the highest sequence seen
// overall; entries older than the replay window count as stale and get
// reprocessed rather than silently eaten after a source restart.
func (d *Deduper) Check(src, seq, tagHi, tagLo, horizon uint64) bool {
	s := &d.buf[utils.Mix64(src^seq)&((1<<constants.DedupeBits)-1)]

	stale := s.age > 0 && horizon > s.age && horizon-s.age > constants.ReplayWindow

	// Branchless exact match on the full identity.
	diff := (s.src ^ src) | (s.seq ^ seq) | (s.tagHi ^ tagHi) | (s.tagLo ^ tagLo)
	duplicate := diff == 0 && !stale

	if !duplicate {
		*s = slot{src: src, seq: seq, age: horizon, tagHi: tagHi, tagLo: tagLo}
	}
	return !duplicate
}
