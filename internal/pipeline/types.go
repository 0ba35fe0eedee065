package pipeline

import (
	"sheaf/internal/classify"
	"sheaf/internal/quality"
)

// Request describes one merge run.
type Request struct {
	// Inputs are the file paths in the order the caller supplied them.
	Inputs []string
	// Alphabetical sorts candidates lexicographically by path instead of
	// preserving input order.
	Alphabetical bool
	// TargetPath is the output file; empty derives
	// <dir>/<base>-merged.pdf from the first candidate.
	TargetPath string
	// Profile is the quality profile applied during assembly.
	Profile quality.Profile
	// MaxWorkers bounds concurrent conversions; values below 1 mean 1.
	MaxWorkers int
}

// Candidate is a convertible classification with its merge sequence index.
type Candidate struct {
	Classification classify.Classification
	Index          int
}

// MergeResult is the final outcome of a successful run.
type MergeResult struct {
	OutputPath string
	Succeeded  int
	Skipped    int
	Pages      int
}
