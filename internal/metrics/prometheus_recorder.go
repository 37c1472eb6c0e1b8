package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

const namespace = "rulesgen"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	documents      *prom.CounterVec
	artifacts      *prom.CounterVec
	markerWarnings prom.Counter
	fetchDuration  *prom.HistogramVec
	runDuration    prom.Gauge
	runOutcomes    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the run metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents transformed, by kind and target",
		}, []string{"kind", "target"}),
		artifacts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Files and links written, by output shape",
		}, []string{"shape"}),
		markerWarnings: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "marker_warnings_total",
			Help:      "Malformed target markers kept as content",
		}),
		fetchDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the hub fetch",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		runDuration: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last generation run",
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.documents, pr.artifacts, pr.markerWarnings, pr.fetchDuration, pr.runDuration, pr.runOutcomes)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) AddDocuments(kind, target string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.documents.WithLabelValues(kind, target).Add(float64(n))
}

func (p *PrometheusRecorder) AddArtifacts(shape string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.artifacts.WithLabelValues(shape).Add(float64(n))
}

func (p *PrometheusRecorder) AddMarkerWarnings(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.markerWarnings.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveFetchDuration(d time.Duration, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.fetchDuration.WithLabelValues(res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Set(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes the registry to path in the node-exporter textfile format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
