package metrics

import (
	"sync"
	"time"
)

type augmentStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about chat traffic and
// augmentation calls, mirrored to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*augmentStats
	intents map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*augmentStats),
		intents: make(map[string]int),
		otel:    otel,
	}
}

// RecordAugmentation increments counters for an outbound text-generation call
// of the given kind and stores the last observed latency.
func (r *Recorder) RecordAugmentation(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(kind)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAugmentation(kind, duration, err)
	}
}

// RecordRateLimit tracks that an augmentation call hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(kind string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(kind)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(kind, retryAfter)
	}
}

// RecordIntent counts a resolved chat intent.
func (r *Recorder) RecordIntent(intent string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.intents[intent]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordIntent(intent)
	}
}

// IntentCount returns how many times an intent was resolved.
func (r *Recorder) IntentCount(intent string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intents[intent]
}

// AugmentCalls returns the total attempts recorded for a kind.
func (r *Recorder) AugmentCalls(kind string) int {
	return r.Snapshot(kind).Calls
}

// AugmentErrors returns the total failed attempts recorded for a kind.
func (r *Recorder) AugmentErrors(kind string) int {
	return r.Snapshot(kind).Errors
}

// RateLimitHits returns the number of rate limit events seen for a kind.
func (r *Recorder) RateLimitHits(kind string) int {
	return r.Snapshot(kind).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a kind.
func (r *Recorder) LastRetryAfter(kind string) time.Duration {
	return r.Snapshot(kind).LastRetryAfter
}

// Snapshot is a copy of the stats for one augmentation kind.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(kind string) *augmentStats {
	stats, ok := r.stats[kind]
	if !ok {
		stats = &augmentStats{}
		r.stats[kind] = stats
	}
	return stats
}
