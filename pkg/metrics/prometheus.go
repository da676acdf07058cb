// Package metrics provides Prometheus metrics for the fastbreak career
// simulation service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the fastbreak service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Simulation metrics
	gamesSimulated     prometheus.Counter
	simulationErrors   prometheus.Counter
	possessionsPerGame prometheus.Histogram
	pointsPerGame      prometheus.Histogram
	simulationLatency  prometheus.Histogram

	// Development metrics
	experienceAwarded prometheus.Counter
	skillUpgrades     prometheus.Counter
	trainingSessions  prometheus.Counter

	// Aging and regeneration metrics
	seasonsAdvanced  prometheus.Counter
	retirements      *prometheus.CounterVec
	playersGenerated *prometheus.CounterVec

	// Prospect pool metrics
	poolSize  prometheus.Gauge
	poolTaken prometheus.Counter

	// Fixture queue metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueueRate   prometheus.Counter
	queueDequeueRate   prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Worker metrics
	workerCount             prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// League state metrics
	activePlayers prometheus.Gauge
	seasonNumber  prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking by component
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fastbreak",
		subsystem:        "career",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.gamesSimulated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_simulated_total",
		Help:      "Total number of games simulated",
	})

	m.simulationErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_errors_total",
		Help:      "Total number of game simulations that failed",
	})

	m.possessionsPerGame = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "possessions_per_game",
		Help:      "Possessions played per simulated game",
		Buckets:   prometheus.LinearBuckets(160, 10, 9),
	})

	m.pointsPerGame = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_per_game",
		Help:      "Combined points per simulated game",
		Buckets:   prometheus.LinearBuckets(100, 25, 10),
	})

	m.simulationLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_latency_ms",
		Help:      "Wall time to simulate one game in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.experienceAwarded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "experience_awarded_total",
		Help:      "Total skill experience points awarded",
	})

	m.skillUpgrades = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_upgrades_total",
		Help:      "Total skill point upgrades applied",
	})

	m.trainingSessions = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_sessions_total",
		Help:      "Total training sessions processed",
	})

	m.seasonsAdvanced = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seasons_advanced_total",
		Help:      "Total per-player season aging advances applied",
	})

	m.retirements = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retirements_total",
		Help:      "Total retirements by reason",
	}, []string{"reason"})

	m.playersGenerated = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_generated_total",
		Help:      "Total players generated by talent tier",
	}, []string{"tier"})

	m.poolSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prospect_pool_size",
		Help:      "Current number of prospects in the pool",
	})

	m.poolTaken = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prospects_taken_total",
		Help:      "Total prospects promoted into rosters",
	})

	m.queueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_queue_size",
		Help:      "Current number of queued fixtures",
	})

	m.queueCapacity = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_queue_capacity",
		Help:      "Configured fixture queue capacity",
	})

	m.queueUtilization = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_queue_utilization",
		Help:      "Fixture queue fill ratio between 0 and 1",
	})

	m.queueEnqueueRate = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_enqueues_total",
		Help:      "Total fixtures enqueued",
	})

	m.queueDequeueRate = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_dequeues_total",
		Help:      "Total fixtures dequeued by workers",
	})

	m.queueEnqueueErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_enqueue_errors_total",
		Help:      "Total fixture enqueue rejections",
	})

	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Configured number of simulation workers",
	})

	m.workerProcessingLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_processing_latency_ms",
		Help:      "Worker fixture processing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.workerErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total worker processing errors",
	})

	m.activePlayers = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_players",
		Help:      "Current number of active non-retired players",
	})

	m.seasonNumber = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_number",
		Help:      "Current season number",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorRateByComponent = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total errors by component and type",
	}, []string{"component", "type"})
}

// RecordGameSimulated records one finished game with its possession count
// and combined score.
func RecordGameSimulated(possessions, totalPoints int) {
	globalManager.gamesSimulated.Inc()
	globalManager.possessionsPerGame.Observe(float64(possessions))
	globalManager.pointsPerGame.Observe(float64(totalPoints))
}

// RecordSimulationError records one failed game simulation.
func RecordSimulationError() {
	globalManager.simulationErrors.Inc()
}

// RecordSimulationLatency records one game's wall time in milliseconds.
func RecordSimulationLatency(latencyMs float64) {
	globalManager.simulationLatency.Observe(latencyMs)
}

// RecordExperienceAwarded adds to the awarded experience counter.
func RecordExperienceAwarded(xp int) {
	if xp > 0 {
		globalManager.experienceAwarded.Add(float64(xp))
	}
}

// RecordSkillUpgrades adds applied skill point upgrades.
func RecordSkillUpgrades(n int) {
	if n > 0 {
		globalManager.skillUpgrades.Add(float64(n))
	}
}

// RecordTrainingSession records one processed training session.
func RecordTrainingSession() {
	globalManager.trainingSessions.Inc()
}

// RecordSeasonAdvance records one per-player season aging advance.
func RecordSeasonAdvance() {
	globalManager.seasonsAdvanced.Inc()
}

// RecordRetirement records one retirement with its reason code.
func RecordRetirement(reason string) {
	globalManager.retirements.WithLabelValues(reason).Inc()
}

// RecordPlayerGenerated records one generated player by talent tier.
func RecordPlayerGenerated(tier string) {
	globalManager.playersGenerated.WithLabelValues(tier).Inc()
}

// UpdateProspectPoolSize sets the current prospect pool size.
func UpdateProspectPoolSize(n int) {
	globalManager.poolSize.Set(float64(n))
}

// RecordProspectTaken records one prospect promoted into a roster.
func RecordProspectTaken() {
	globalManager.poolTaken.Inc()
}

// UpdateQueueSize sets the current fixture queue length.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the configured fixture queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue fill ratio.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue records one accepted fixture.
func RecordQueueEnqueue() {
	globalManager.queueEnqueueRate.Inc()
}

// RecordQueueDequeue records one dequeued fixture.
func RecordQueueDequeue() {
	globalManager.queueDequeueRate.Inc()
}

// RecordQueueEnqueueError records one rejected enqueue.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// UpdateWorkerCount sets the configured worker count.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordWorkerProcessingLatency records one fixture's processing time.
func RecordWorkerProcessingLatency(latencyMs float64) {
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError records one worker processing failure.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// UpdateActivePlayers sets the current active player count.
func UpdateActivePlayers(n int) {
	globalManager.activePlayers.Set(float64(n))
}

// UpdateSeasonNumber sets the current season number.
func UpdateSeasonNumber(n int) {
	globalManager.seasonNumber.Set(float64(n))
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records one component error.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
