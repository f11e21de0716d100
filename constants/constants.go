// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Pipeline tunables
//
// Purpose:
//   - Compile-time sizing for the rings, the dedupe window, the spill
//     backlog and the journal batch.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable.
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ──────────────────────────────── Rings ────────────────────────────────────

const (
	// EventQueueSize is the slot count of the sample queue between the
	// ingest loop and the journal drain.  Power of two; the ring layer
	// reserves one slot, so usable depth is EventQueueSize-1.
	EventQueueSize = 1 << 10

	// GaugeBufferSize sizes the latest-value buffer feeding the monitor.
	// Small on purpose: stale gauges are worthless, eviction is the point.
	GaugeBufferSize = 1 << 6
)

// ─────────────────────────────── Dedupe ────────────────────────────────────

const (
	// DedupeBits sizes the replay-detection ring: 2^14 slots ≈ 1 MiB,
	// comfortably L2-resident while covering bursts of tens of thousands
	// of in-flight samples.
	DedupeBits = 14

	// ReplayWindow is how far the sequence horizon may advance before a
	// remembered sample is considered stale and eligible again.  Real
	// replays arrive close to the original; anything older is a restart.
	ReplayWindow = 4096
)

// ─────────────────────────── Spill & Journal ───────────────────────────────

const (
	// SpillBacklogMax caps the producer-side overflow backlog.  Past this
	// the pipeline drops rather than grow without bound.
	SpillBacklogMax = 1 << 16

	// JournalBatchSize is the number of samples committed per SQLite
	// transaction.  Larger batches amortise fsync; smaller bound loss on
	// crash.
	JournalBatchSize = 256

	// JournalPath is the default SQLite database file.
	JournalPath = "samples.db"
)

// ─────────────────────────────── Threads ───────────────────────────────────

const (
	// ConsumerCore is the logical CPU the drain thread pins to.
	ConsumerCore = 1
)
