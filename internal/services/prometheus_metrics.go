package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricRunsTotal        = "pipeline_runs"
	MetricRowsProcessed    = "rows_processed"
	MetricGateFailedChecks = "gate_failed_check"
	MetricStageDuration    = "stage_duration"
	MetricRunDuration      = "run_duration"
	MetricRowsDropped      = "rows_dropped"
	MetricRowsLoaded       = "rows_loaded"
	MetricQualityPct       = "quality_pct"
	MetricLastSuccess      = "last_success"
)

type PrometheusMetrics struct {
	registry         *prometheus.Registry
	pushURL          string
	jobName          string
	pushBreaker      *CircuitBreaker
	runsTotal        *prometheus.CounterVec
	rowsProcessed    *prometheus.CounterVec
	gateFailedChecks *prometheus.CounterVec
	stageDuration    *prometheus.HistogramVec
	runDuration      prometheus.Histogram
	rowsDropped      *prometheus.GaugeVec
	rowsLoaded       *prometheus.GaugeVec
	qualityPct       *prometheus.GaugeVec
	lastSuccess      prometheus.Gauge
}

// NewPrometheusMetrics registers the pipeline metrics on registry. When pushURL
// is empty Push is a no-op.
func NewPrometheusMetrics(registry *prometheus.Registry, pushURL, jobName string) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if jobName == "" {
		jobName = "finance_pipeline"
	}
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry:    registry,
		pushURL:     pushURL,
		jobName:     jobName,
		pushBreaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_runs_total",
				Help: "Total number of pipeline runs by outcome",
			},
			[]string{"status"},
		),
		rowsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_rows_processed_total",
				Help: "Total number of rows read or written by stage",
			},
			[]string{"stage"},
		),
		gateFailedChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quality_gate_failed_checks_total",
				Help: "Total number of quality gate rule violations by rule",
			},
			[]string{"rule"},
		),
		stageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pipeline_stage_duration_milliseconds",
				Help:    "Pipeline stage duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
			[]string{"stage"},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pipeline_run_duration_seconds",
				Help:    "Pipeline run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		rowsDropped: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cleaner_rows_dropped",
				Help: "Rows removed by the cleaner in the last run by reason",
			},
			[]string{"reason"},
		),
		rowsLoaded: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "warehouse_rows_loaded",
				Help: "Rows loaded into the warehouse in the last run by table",
			},
			[]string{"table"},
		),
		qualityPct: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quality_gate_defect_fraction",
				Help: "Defect fraction computed by the quality gate in the last run",
			},
			[]string{"check"},
		),
		lastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pipeline_last_success_timestamp_seconds",
				Help: "Unix time of the last successful run",
			},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRunsTotal:
		if status := tags["status"]; status != "" {
			m.runsTotal.WithLabelValues(status).Inc()
		}
	case MetricGateFailedChecks:
		if rule := tags["rule"]; rule != "" {
			m.gateFailedChecks.WithLabelValues(rule).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRunDuration:
		m.runDuration.Observe(duration.Seconds())
	default:
		m.stageDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRowsProcessed:
		if stage := tags["stage"]; stage != "" {
			m.rowsProcessed.WithLabelValues(stage).Add(value)
		}
	case MetricRowsDropped:
		if reason := tags["reason"]; reason != "" {
			m.rowsDropped.WithLabelValues(reason).Set(value)
		}
	case MetricRowsLoaded:
		if table := tags["table"]; table != "" {
			m.rowsLoaded.WithLabelValues(table).Set(value)
		}
	case MetricQualityPct:
		if check := tags["check"]; check != "" {
			m.qualityPct.WithLabelValues(check).Set(value)
		}
	case MetricLastSuccess:
		m.lastSuccess.Set(value)
	}
}

// Push sends every registered metric to the Pushgateway. After repeated
// failures pushes are skipped with ErrCircuitBreakerOpen for a while.
func (m *PrometheusMetrics) Push(ctx context.Context) error {
	if m.pushURL == "" {
		return nil
	}
	return m.pushBreaker.Call(func() error {
		return push.New(m.pushURL, m.jobName).Gatherer(m.registry).PushContext(ctx)
	})
}
