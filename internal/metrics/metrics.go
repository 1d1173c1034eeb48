package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	loads           int
	errors          int
	lastRows        int
	lastLoadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset loads.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordLoadAttempt increments counters for a dataset load and stores the last observed latency.
func (r *Recorder) RecordLoadAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordLoadAttempt(source, duration, err)
	}
}

// RecordDatasetRows stores how many player rows the most recent successful load produced.
func (r *Recorder) RecordDatasetRows(source string, rows int) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.lastRows = rows
	if r.otel != nil {
		r.otel.recordDatasetRows(source, rows)
	}
}

// SourceLoads returns the total load attempts recorded for a source.
func (r *Recorder) SourceLoads(source string) int {
	return r.Snapshot(source).Loads
}

// SourceErrors returns the total failed load attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastRows returns the row count of the most recent successful load for a source.
func (r *Recorder) LastRows(source string) int {
	return r.Snapshot(source).LastRows
}

// LastLoadLatency returns the last recorded latency for a dataset load.
func (r *Recorder) LastLoadLatency(source string) time.Duration {
	return r.Snapshot(source).LastLoadLatency
}

// Snapshot returns a copy of the current stats for the source.
type Snapshot struct {
	Loads           int
	Errors          int
	LastRows        int
	LastLoadLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		LastRows:        stats.lastRows,
		LastLoadLatency: stats.lastLoadLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordQuery tracks analytical queries served by the dashboard, keyed by view.
func (r *Recorder) RecordQuery(view string, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordQuery(view, duration)
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
