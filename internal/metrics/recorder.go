package metrics

import "time"

// Outcome labels the final state of a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	AddDocuments(kind, target string, n int)
	AddArtifacts(shape string, n int)
	AddMarkerWarnings(n int)
	ObserveFetchDuration(d time.Duration, success bool)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome Outcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) AddDocuments(string, string, int)         {}
func (NoopRecorder) AddArtifacts(string, int)                 {}
func (NoopRecorder) AddMarkerWarnings(int)                    {}
func (NoopRecorder) ObserveFetchDuration(time.Duration, bool) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)         {}
func (NoopRecorder) IncRunOutcome(Outcome)                    {}
