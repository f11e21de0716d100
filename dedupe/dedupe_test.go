package dedupe

import (
	"testing"

	"main/constants"
	"main/utils"
)

// TestFirstSeenIsNew checks an empty table accepts anything.
func TestFirstSeenIsNew(t *testing.T) {
	var d Deduper
	hi, lo := Fingerprint([]byte("payload"))
	if !d.Check(utils.HashBytes([]byte("src")), 1, hi, lo, 1) {
		t.Fatal("first occurrence reported as duplicate")
	}
}

// TestExactReplayRejected checks the identical tuple bounces the second
// time.
func TestExactReplayRejected(t *testing.T) {
	var d Deduper
	src := utils.HashBytes([]byte("src"))
	hi, lo := Fingerprint([]byte("payload"))
	d.Check(src, 5, hi, lo, 5)
	if d.Check(src, 5, hi, lo, 5) {
		t.Fatal("exact replay accepted")
	}
}

// TestDifferentSeqAccepted checks the key includes the sequence number.
func TestDifferentSeqAccepted(t *testing.T) {
	var d Deduper
	src := utils.HashBytes([]byte("src"))
	hi, lo := Fingerprint([]byte("payload"))
	d.Check(src, 5, hi, lo, 5)
	if !d.Check(src, 6, hi, lo, 6) {
		t.Fatal("next sequence rejected")
	}
}

// TestFingerprintMismatchAccepted checks the same (src, seq) with changed
// payload is treated as new, not silently eaten.
func TestFingerprintMismatchAccepted(t *testing.T) {
	var d Deduper
	src := utils.HashBytes([]byte("src"))
	hi1, lo1 := Fingerprint([]byte("payload-a"))
	hi2, lo2 := Fingerprint([]byte("payload-b"))
	if hi1 == hi2 && lo1 == lo2 {
		t.Fatal("fingerprints collide on different payloads")
	}
	d.Check(src, 5, hi1, lo1, 5)
	if !d.Check(src, 5, hi2, lo2, 5) {
		t.Fatal("changed payload rejected as duplicate")
	}
}

// TestStaleEntryReprocessed advances the horizon past the replay window
// and checks the old identity is accepted again.
func TestStaleEntryReprocessed(t *testing.T) {
	var d Deduper
	src := utils.HashBytes([]byte("src"))
	hi, lo := Fingerprint([]byte("payload"))
	d.Check(src, 5, hi, lo, 5)
	horizon := uint64(5 + constants.ReplayWindow + 1)
	if !d.Check(src, 5, hi, lo, horizon) {
		t.Fatal("stale entry still rejected after the replay window")
	}
}

// TestFingerprintStable checks determinism and input sensitivity.
func TestFingerprintStable(t *testing.T) {
	h1, l1 := Fingerprint([]byte("x"))
	h2, l2 := Fingerprint([]byte("x"))
	if h1 != h2 || l1 != l2 {
		t.Fatal("Fingerprint is not deterministic")
	}
	h3, l3 := Fingerprint([]byte("y"))
	if h1 == h3 && l1 == l3 {
		t.Fatal("Fingerprint identical for different payloads")
	}
}
