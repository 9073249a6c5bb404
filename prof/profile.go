package prof

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Meant to be
// deferred at the top of the measured section:
//
//	defer prof.Track(time.Now(), "sweep")
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// WriteReport snapshots the collected entries, writes one line per label to
// w and clears the record. A nil error does not imply any entries existed.
func WriteReport(w io.Writer) error {
	for _, e := range SnapshotAndReset() {
		if _, err := fmt.Fprintf(w, "%-20s %v\n", e.Label, e.Dur); err != nil {
			return err
		}
	}
	return nil
}
