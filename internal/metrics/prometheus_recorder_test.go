package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)

func counterValue(t *testing.T, reg *prom.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					match = false
				}
			}
			if match {
				if c := m.GetCounter(); c != nil {
					return c.GetValue()
				}
				return m.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.AddDocuments("rules", "cursor", 3)
	pr.AddDocuments("rules", "cursor", 2)
	pr.AddDocuments("rules", "codex", 5)
	pr.AddArtifacts("mirrored-tree", 5)
	pr.AddArtifacts("symlink", 0)
	pr.AddMarkerWarnings(1)
	pr.ObserveFetchDuration(150*time.Millisecond, true)
	pr.ObserveRunDuration(2 * time.Second)
	pr.IncRunOutcome(OutcomeSuccess)

	require.Equal(t, 5.0, counterValue(t, reg, "rulesgen_documents_total", map[string]string{"kind": "rules", "target": "cursor"}))
	require.Equal(t, 5.0, counterValue(t, reg, "rulesgen_documents_total", map[string]string{"kind": "rules", "target": "codex"}))
	require.Equal(t, 5.0, counterValue(t, reg, "rulesgen_artifacts_written_total", map[string]string{"shape": "mirrored-tree"}))
	require.Equal(t, 1.0, counterValue(t, reg, "rulesgen_marker_warnings_total", nil))
	require.Equal(t, 2.0, counterValue(t, reg, "rulesgen_last_run_duration_seconds", nil))
	require.Equal(t, 1.0, counterValue(t, reg, "rulesgen_run_outcomes_total", map[string]string{"outcome": "success"}))
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.AddDocuments("rules", "cursor", 1)
	pr.ObserveRunDuration(time.Second)
	pr.IncRunOutcome(OutcomeFailed)
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.AddArtifacts("single-bundle", 1)
	path := filepath.Join(t.TempDir(), "rulesgen.prom")

	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `rulesgen_artifacts_written_total{shape="single-bundle"} 1`), string(data))
}
