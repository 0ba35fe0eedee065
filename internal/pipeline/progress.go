package pipeline

import (
	"log/slog"

	"sheaf/internal/logging"
)

// Reporter receives step-by-step run status. Step calls arrive in candidate
// order with monotonically increasing indices regardless of worker
// completion order; FileError reports per-file skips.
type Reporter interface {
	Step(index, total int, description string)
	FileError(path, description string)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Step(int, int, string)    {}
func (NopReporter) FileError(string, string) {}

// LogReporter forwards progress to a structured logger.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Step(index, total int, description string) {
	if r.Logger == nil {
		return
	}
	r.Logger.Info(description,
		logging.Args(
			logging.Int("step", index),
			logging.Int("total", total),
			logging.String(logging.FieldEventType, "progress"),
		)...)
}

func (r LogReporter) FileError(path, description string) {
	if r.Logger == nil {
		return
	}
	r.Logger.Warn("file skipped",
		logging.Args(
			logging.String(logging.FieldFile, path),
			logging.String("reason", description),
			logging.String(logging.FieldEventType, "file_skipped"),
		)...)
}
