// Package metrics records what a generation run produced.
//
// Components receive a Recorder and default to NoopRecorder, so metrics stay
// optional without nil checks. PrometheusRecorder keeps a per-run registry
// that can be exported in node-exporter textfile format with WriteTextfile.
package metrics
