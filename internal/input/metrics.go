package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const maxLatencySamples = 1000

// Metrics counts translated events and how long the application took to
// handle them. A nil *Metrics records nothing.
type Metrics struct {
	keyEvents   atomic.Uint64
	mouseEvents atomic.Uint64
	otherEvents atomic.Uint64
	ignored     atomic.Uint64
	peakLatency atomic.Int64

	mu         sync.Mutex
	latencies  []time.Duration
	latencyIdx int
	startTime  time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies: make([]time.Duration, maxLatencySamples),
		startTime: time.Now(),
	}
}

func (m *Metrics) recordEvent(kind EventKind) {
	if m == nil {
		return
	}
	switch kind {
	case EventKey:
		m.keyEvents.Add(1)
	case EventMouse:
		m.mouseEvents.Add(1)
	default:
		m.otherEvents.Add(1)
	}
}

func (m *Metrics) recordIgnored() {
	if m == nil {
		return
	}
	m.ignored.Add(1)
}

// RecordHandled records how long handling one event took, including the
// frame it triggered.
func (m *Metrics) RecordHandled(latency time.Duration) {
	if m == nil {
		return
	}

	ns := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if ns <= current || m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % maxLatencySamples
	m.mu.Unlock()
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyEvents   uint64
	MouseEvents uint64
	OtherEvents uint64
	Ignored     uint64

	AvgLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}

	m.mu.Lock()
	samples := make([]time.Duration, 0, len(m.latencies))
	for _, l := range m.latencies {
		if l > 0 {
			samples = append(samples, l)
		}
	}
	uptime := time.Since(m.startTime)
	m.mu.Unlock()

	snap := MetricsSnapshot{
		KeyEvents:   m.keyEvents.Load(),
		MouseEvents: m.mouseEvents.Load(),
		OtherEvents: m.otherEvents.Load(),
		Ignored:     m.ignored.Load(),
		PeakLatency: time.Duration(m.peakLatency.Load()),
		Uptime:      uptime,
	}
	if uptime > 0 {
		total := snap.KeyEvents + snap.MouseEvents + snap.OtherEvents
		snap.EventsPerSecond = float64(total) / uptime.Seconds()
	}
	snap.AvgLatency, snap.P99Latency = latencyStats(samples)
	return snap
}

func latencyStats(samples []time.Duration) (avg, p99 time.Duration) {
	if len(samples) == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, l := range samples {
		sum += l
	}
	avg = sum / time.Duration(len(samples))

	slices.Sort(samples)
	idx := int(float64(len(samples)) * 0.99)
	if idx >= len(samples) {
		idx = len(samples) - 1
	}
	return avg, samples[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.keyEvents.Store(0)
	m.mouseEvents.Store(0)
	m.otherEvents.Store(0)
	m.ignored.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, maxLatencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
