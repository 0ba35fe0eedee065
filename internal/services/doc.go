// Package services defines shared utilities consumed by the pipeline stages
// and the external converter integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     into fatal run errors versus recoverable per-file skips.
//   - The Executor abstraction that makes external command execution
//     testable without invoking real converters.
//
// Use these helpers when wiring new conversion logic so operational
// behaviour (error handling, timeouts, observability) stays uniform across
// the pipeline.
package services
