// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: journal.go — SQLite sink for drained samples
//
// Purpose:
//   - Persists samples leaving the queue into a local SQLite database in
//     batched transactions.
//
// Notes:
//   - (source, seq) is the primary key with INSERT OR REPLACE, so a
//     replay that slipped past dedupe overwrites instead of duplicating.
//   - WAL keeps the drain thread from stalling readers.
//
// ⚠️ Not thread-safe.  The drain thread owns the Journal exclusively
//    after construction.
// ─────────────────────────────────────────────────────────────────────────────

package journal

import (
	"database/sql"

	"main/constants"
	"main/feed"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	source  TEXT    NOT NULL,
	seq     INTEGER NOT NULL,
	value   REAL    NOT NULL,
	ts      INTEGER NOT NULL,
	payload TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (source, seq)
);`

// Journal accumulates samples and commits them in batches.
type Journal struct {
	db      *sql.DB
	pending []feed.Sample
	written uint64
}

// Open creates or opens the database at path and prepares the schema.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{
		db:      db,
		pending: make([]feed.Sample, 0, constants.JournalBatchSize),
	}, nil
}

// Append queues s for the next batch, flushing when the batch fills.
func (j *Journal) Append(s feed.Sample) error {
	j.pending = append(j.pending, s)
	if len(j.pending) >= constants.JournalBatchSize {
		return j.Flush()
	}
	return nil
}

// Flush commits every pending sample in one transaction.  The pending
// batch is kept on error so a retry sees the same samples.
func (j *Journal) Flush() error {
	if len(j.pending) == 0 {
		return nil
	}
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO samples (source, seq, value, ts, payload) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, s := range j.pending {
		if _, err := stmt.Exec(s.Source, int64(s.Seq), s.Value, s.TS, s.Payload); err != nil {
			stmt.Close()
			tx.Rollback()
			return err
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return err
	}
	j.written += uint64(len(j.pending))
	j.pending = j.pending[:0]
	return nil
}

// Written returns the number of samples committed so far.
func (j *Journal) Written() uint64 {
	return j.written
}

// Count reports the rows currently in the samples table.
func (j *Journal) Count() (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM samples`).Scan(&n)
	return n, err
}

// Close flushes any pending batch and closes the database.
func (j *Journal) Close() error {
	flushErr := j.Flush()
	if err := j.db.Close(); err != nil {
		return err
	}
	return flushErr
}
