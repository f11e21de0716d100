// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: feed.go — NDJSON sample ingestion
//
// Purpose:
//   - Decodes newline-delimited JSON telemetry samples into fixed structs.
//   - Offers a zero-alloc pre-filter so lines that are obviously not
//     samples never reach the full decoder.
//
// Notes:
//   - sonnet does the full parse; the micro-scanners only answer "is this
//     worth parsing" and "which source is it from".
// ─────────────────────────────────────────────────────────────────────────────

package feed

import (
	"bytes"
	"errors"

	"main/utils"

	"github.com/sugawarayuuta/sonnet"
)

// Sample is one telemetry point from the feed.
type Sample struct {
	Source  string  `json:"source"`  // producer identity, required
	Seq     uint64  `json:"seq"`     // per-source sequence number
	Value   float64 `json:"value"`   // the measurement itself
	TS      int64   `json:"ts"`      // producer timestamp, unix nanos
	Payload string  `json:"payload"` // opaque attachment, fingerprinted for dedupe
}

var (
	ErrNoSource = errors.New("feed: sample missing source")

	sourceKey = []byte(`"source"`)
)

// Decode parses one NDJSON line into a Sample.  Anything without a source
// is rejected: an unattributable sample cannot be deduplicated or
// journaled meaningfully.
func Decode(line []byte) (Sample, error) {
	var s Sample
	if err := sonnet.Unmarshal(line, &s); err != nil {
		return Sample{}, err
	}
	if s.Source == "" {
		return Sample{}, ErrNoSource
	}
	return s, nil
}

// QuickSource extracts the source field without a full parse, for cheap
// filtering ahead of Decode.  Returns nil when the line does not look
// like a sample.  The returned slice aliases line.
func QuickSource(line []byte) []byte {
	i := bytes.Index(line, sourceKey)
	if i < 0 {
		return nil
	}
	rest := line[i+len(sourceKey):]
	q := utils.FindQuote(rest)
	if q < 0 {
		return nil
	}
	return utils.SliceASCII(rest, q)
}
