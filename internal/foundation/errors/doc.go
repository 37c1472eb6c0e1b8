// Package errors provides foundational, type-safe error primitives used across rulesgen.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, no_sources, path_conflict, filesystem, git, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, backoff, user action)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for error presentation and exit codes
//
// Example usage:
//
//	err := errors.NoSourcesError("no source files matched").
//		WithContext("label", "rules").
//		WithContext("patterns", patterns).
//		Build()
package errors
