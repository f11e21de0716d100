// ════════════════════════════════════════════════════════════════════════════════════════════════
// Sample Feed Pipeline - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: SPSC Ring Sample Pipeline
// Component: Orchestration
//
// Description:
//   Streams NDJSON telemetry samples through the SPSC primitives:
//   ingest → dedupe → blocking queue → pinned drain → SQLite journal,
//   with a latest-value gauge riding the overwritable buffer.
//
// Threading:
//   - main goroutine: ingest loop (producer for both rings)
//   - pinned OS thread: queue drain into the journal (queue consumer)
//   - monitor goroutine: gauge reader (buffer consumer)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"main/constants"
	"main/control"
	"main/debug"
	"main/dedupe"
	"main/feed"
	"main/journal"
	"main/ring"
	"main/spill"
	"main/utils"
)

// maxLine bounds a single NDJSON line; anything larger is not a sample.
const maxLine = 1 << 20

func main() {
	in := openInput()

	jr, err := journal.Open(journalPath())
	if err != nil {
		debug.DropError("JOURNAL_OPEN", err)
		os.Exit(1)
	}

	events := ring.NewQueue[feed.Sample](constants.EventQueueSize)
	gauges := ring.NewBuffer[feed.Sample](constants.GaugeBufferSize)

	// Drain thread: pinned consumer moving samples into the journal.
	stop, hot := control.Flags()
	done := make(chan struct{})
	ring.PinnedConsumer(constants.ConsumerCore, events, stop, hot, func(s feed.Sample) {
		if err := jr.Append(s); err != nil {
			debug.DropError("JOURNAL_APPEND", err)
		}
	}, done)

	// Gauge monitor: drains the overwritable buffer once a second and
	// reports the newest sample it saw.
	monitorDone := make(chan struct{})
	go monitorGauges(gauges, monitorDone)

	setupSignalHandling()
	debug.DropMessage("READY", "pipeline running")

	accepted, skipped, duplicates, dropped := ingest(in, events, gauges)

	// Let the queue empty before stopping the drain.
	for events.Len() > 0 && !control.Stopping() {
		runtime.Gosched()
	}
	control.Shutdown()
	events.WakeAll() // nudge anything parked on the counters
	<-done
	close(monitorDone)

	if err := jr.Close(); err != nil {
		debug.DropError("JOURNAL_CLOSE", err)
	}

	debug.DropMessage("DONE",
		utils.Itoa(accepted)+" accepted, "+
			utils.Itoa(skipped)+" skipped, "+
			utils.Itoa(duplicates)+" duplicates, "+
			utils.Itoa(int(dropped))+" dropped, "+
			utils.Itoa(int(jr.Written()))+" journaled")
}

// ingest runs the producer loop until the input ends or shutdown is
// signaled.  Returns counters for the exit summary.
func ingest(in io.Reader, events *ring.Queue[feed.Sample], gauges *ring.Buffer[feed.Sample]) (accepted, skipped, duplicates int, dropped uint64) {
	var dd dedupe.Deduper
	w := spill.NewWriter(events, constants.SpillBacklogMax)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64<<10), maxLine)

	var horizon uint64
	for sc.Scan() {
		if control.Stopping() {
			break
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if feed.QuickSource(line) == nil {
			skipped++
			continue
		}
		s, err := feed.Decode(line)
		if err != nil {
			debug.DropError("DECODE", err)
			skipped++
			continue
		}

		if s.Seq > horizon {
			horizon = s.Seq
		}
		tagHi, tagLo := dedupe.Fingerprint([]byte(s.Payload))
		if !dd.Check(utils.HashBytes([]byte(s.Source)), s.Seq, tagHi, tagLo, horizon) {
			duplicates++
			continue
		}

		control.SignalActivity()
		gauges.Overwrite(s) // latest-value-wins for the monitor
		if !w.Offer(s) {
			// ring and backlog both full: the writer dropped it.
			continue
		}
		accepted++
		control.PollCooldown()
	}
	if err := sc.Err(); err != nil {
		debug.DropError("INPUT", err)
	}

	// Push the tail of the backlog through before returning.
	for w.Backlog() > 0 && !control.Stopping() {
		if w.Drain() == 0 {
			runtime.Gosched()
		}
	}
	return accepted, skipped, duplicates, w.Dropped()
}

// monitorGauges drains the latest-value buffer once a second and logs the
// newest sample present.  It is the buffer's single consumer.
func monitorGauges(gauges *ring.Buffer[feed.Sample], done <-chan struct{}) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-done:
			return
		case <-tick.C:
			var last feed.Sample
			seen := false
			for {
				s, ok := gauges.Read()
				if !ok {
					break
				}
				last, seen = s, true
			}
			if seen {
				debug.DropMessage("GAUGE",
					last.Source+" seq "+utils.Itoa(int(last.Seq)))
			}
		}
	}
}

// openInput returns the sample stream: the file named on the command line,
// or stdin.
func openInput() io.Reader {
	if len(os.Args) > 1 && os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			debug.DropError("INPUT_OPEN", err)
			os.Exit(1)
		}
		return f
	}
	return os.Stdin
}

// journalPath honours an optional second argument for the database file.
func journalPath() string {
	if len(os.Args) > 2 {
		return os.Args[2]
	}
	return constants.JournalPath
}

// setupSignalHandling converts SIGINT/SIGTERM into a graceful shutdown.
func setupSignalHandling() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		debug.DropMessage("SIGNAL", "shutting down")
		control.Shutdown()
	}()
}
