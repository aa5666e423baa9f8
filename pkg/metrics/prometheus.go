// Package metrics provides Prometheus metrics for the lineup service.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultRefreshInterval = 10 * time.Second

// Manager owns every collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Ratings
	votesSubmitted prometheus.Counter
	votesRejected  *prometheus.CounterVec

	// Lineups
	lineupBuilds    *prometheus.CounterVec
	lineupLatency   *prometheus.HistogramVec
	slotAssignments *prometheus.CounterVec
	sideSwaps       prometheus.Counter

	// Roster and persistence
	rosterPlayers    prometheus.Gauge
	rosterSaves      prometheus.Counter
	rosterSaveErrors prometheus.Counter
	rosterIOLatency  *prometheus.HistogramVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the Record* helpers

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // served on /healthz

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.votesSubmitted = auto.NewCounter(m.counterOpts("votes_submitted_total",
		"Total number of accepted rating votes"))
	m.votesRejected = auto.NewCounterVec(m.counterOpts("votes_rejected_total",
		"Total number of rejected rating votes by reason"), []string{"reason"})

	m.lineupBuilds = auto.NewCounterVec(m.counterOpts("lineup_builds_total",
		"Total number of lineups built by strategy"), []string{"strategy"})
	m.lineupLatency = auto.NewHistogramVec(m.histogramOpts("lineup_latency_milliseconds",
		"Lineup build latency in milliseconds", m.histogramBuckets), []string{"strategy"})
	m.slotAssignments = auto.NewCounterVec(m.counterOpts("slot_assignments_total",
		"Formation slots filled or left unfilled by strategy"), []string{"strategy", "outcome"})
	m.sideSwaps = auto.NewCounter(m.counterOpts("side_swaps_total",
		"Total number of mirrored slot moves made by the side balancing pass"))

	m.rosterPlayers = auto.NewGauge(m.gaugeOpts("roster_players",
		"Number of players in the roster"))
	m.rosterSaves = auto.NewCounter(m.counterOpts("roster_saves_total",
		"Total number of successful roster saves"))
	m.rosterSaveErrors = auto.NewCounter(m.counterOpts("roster_save_errors_total",
		"Total number of failed roster saves"))
	m.rosterIOLatency = auto.NewHistogramVec(m.histogramOpts("roster_io_latency_milliseconds",
		"Roster load and save latency in milliseconds", m.histogramBuckets), []string{"operation"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total",
		"Total number of HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", m.histogramBuckets), []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(m.counterOpts("errors_by_component_total",
		"Total number of errors by component"), []string{"component", "error_type"})
	m.errorsByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total",
		"Total number of errors by endpoint"), []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes",
		"Heap memory in use in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count",
		"Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_time_milliseconds",
		"Most recent GC pause in milliseconds", []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// RecordVoteSubmitted counts an accepted vote.
func RecordVoteSubmitted() {
	if globalManager.enabled {
		globalManager.votesSubmitted.Inc()
	}
}

// RecordVoteRejected counts a rejected vote.
func RecordVoteRejected(reason string) {
	if globalManager.enabled {
		globalManager.votesRejected.WithLabelValues(reason).Inc()
	}
}

// RecordLineup records one lineup build: its latency and how many slots it
// filled and left unfilled.
func RecordLineup(strategy string, latencyMs float64, filled, unfilled, swaps int) {
	if !globalManager.enabled {
		return
	}
	globalManager.lineupBuilds.WithLabelValues(strategy).Inc()
	globalManager.lineupLatency.WithLabelValues(strategy).Observe(latencyMs)
	globalManager.slotAssignments.WithLabelValues(strategy, "filled").Add(float64(filled))
	globalManager.slotAssignments.WithLabelValues(strategy, "unfilled").Add(float64(unfilled))
	globalManager.sideSwaps.Add(float64(swaps))
}

// UpdateRosterPlayers sets the roster size.
func UpdateRosterPlayers(count int) {
	if globalManager.enabled {
		globalManager.rosterPlayers.Set(float64(count))
	}
}

// RecordRosterSave records a save attempt and its latency.
func RecordRosterSave(latencyMs float64, err error) {
	if !globalManager.enabled {
		return
	}
	globalManager.rosterIOLatency.WithLabelValues("save").Observe(latencyMs)
	if err != nil {
		globalManager.rosterSaveErrors.Inc()
		return
	}
	globalManager.rosterSaves.Inc()
}

// RecordRosterLoad records the latency of a roster load.
func RecordRosterLoad(latencyMs float64) {
	if globalManager.enabled {
		globalManager.rosterIOLatency.WithLabelValues("load").Observe(latencyMs)
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets the heap memory in use.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// SampleSystem reads runtime statistics once and updates the system gauges.
func SampleSystem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	UpdateSystemMemoryUsage(ms.HeapInuse)
	UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if ms.NumGC > 0 {
		pause := ms.PauseNs[(ms.NumGC+255)%256]
		RecordSystemGCPauseTime(float64(pause) / float64(time.Millisecond))
	}
}

// RunSystemCollector samples the runtime every refresh interval until ctx
// is done.
func RunSystemCollector(ctx context.Context) {
	ticker := time.NewTicker(globalManager.refreshInterval)
	defer ticker.Stop()
	SampleSystem()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			SampleSystem()
		}
	}
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
