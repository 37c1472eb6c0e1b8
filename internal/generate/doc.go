// Package generate runs one generation pass: spec, layout, ignore sync, hub
// fetch, source resolution, transformation and output assembly.
//
// A run is sequential. Every selected kind is resolved before anything is
// written, so a kind matching no documents aborts the run without output.
// The fetched snapshot is released on every exit path.
package generate
