// Package telemetry provides OpenTelemetry instrumentation for the brand
// detector service. It exports Prometheus metrics and provides tracing.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "brand-detector"

// Metrics holds all detector Prometheus metrics.
type Metrics struct {
	// Pipeline metrics
	DetectionsProcessed *prometheus.CounterVec
	PipelineDuration    prometheus.Histogram
	CandidatesExtracted prometheus.Histogram
	CompetitorsFound    prometheus.Histogram

	// NER fallback metrics
	NERCalls        prometheus.Counter
	NERFailures     *prometheus.CounterVec
	NERCallDuration prometheus.Histogram

	// Gazetteer metrics
	GazetteerBuilds    prometheus.Counter
	GazetteerCacheSize prometheus.Gauge
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.DetectionsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "detector_detections_processed_total",
		Help: "Total texts successfully classified",
	}, []string{"org_id"})

	m.PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "detector_pipeline_duration_seconds",
		Help:    "Time to classify a single text, NER included",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20},
	})

	m.CandidatesExtracted = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "detector_candidates_extracted",
		Help:    "Candidates produced by extraction per text",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})

	m.CompetitorsFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "detector_competitors_found",
		Help:    "Competitors resolved per text after ranking",
		Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
	})

	m.NERCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "detector_ner_calls_total",
		Help: "Total NER fallback calls issued",
	})

	m.NERFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "detector_ner_failures_total",
		Help: "NER fallback calls that failed, by error class",
	}, []string{"error_class"})

	m.NERCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "detector_ner_call_duration_seconds",
		Help:    "Duration of NER fallback calls",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 20},
	})

	m.GazetteerBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "detector_gazetteer_builds_total",
		Help: "Total per-organization gazetteer builds",
	})

	m.GazetteerCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "detector_gazetteer_cache_size",
		Help: "Organizations with a cached gazetteer",
	})

	return m
}

// RecordDetection records metrics for a single classification pass.
func (p *Provider) RecordDetection(orgID string, duration time.Duration, candidates, competitors int) {
	p.Metrics.DetectionsProcessed.WithLabelValues(orgID).Inc()
	p.Metrics.PipelineDuration.Observe(duration.Seconds())
	p.Metrics.CandidatesExtracted.Observe(float64(candidates))
	p.Metrics.CompetitorsFound.Observe(float64(competitors))
}

// RecordNERCall records one NER fallback call.
func (p *Provider) RecordNERCall(duration time.Duration, errClass string) {
	p.Metrics.NERCalls.Inc()
	p.Metrics.NERCallDuration.Observe(duration.Seconds())
	if errClass != "" {
		p.Metrics.NERFailures.WithLabelValues(errClass).Inc()
	}
}

// RecordGazetteerBuild records a gazetteer build and the new cache size.
func (p *Provider) RecordGazetteerBuild(cacheSize int) {
	p.Metrics.GazetteerBuilds.Inc()
	p.Metrics.GazetteerCacheSize.Set(float64(cacheSize))
}

// StartSpan starts a new trace span. The caller must end the span.
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
