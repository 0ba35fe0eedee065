package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDependencyMissing marks a required external tool that could not be
	// found before the run started.
	ErrDependencyMissing = errors.New("dependency missing")
	// ErrNoCandidates marks a run whose input list produced no convertible
	// file.
	ErrNoCandidates = errors.New("no candidate files")
	// ErrConversion marks a per-file conversion failure; the pipeline skips
	// the file and continues.
	ErrConversion = errors.New("conversion failed")
	// ErrAssembly marks a failure of the final merge step.
	ErrAssembly = errors.New("assembly failed")

	ErrExternalTool  = errors.New("external tool error")
	ErrTimeout       = errors.New("timeout")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err must abort the whole run rather than skip a
// single file. Per-file conversion failures (including timeouts during
// conversion) are never fatal.
func Fatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrConversion):
		return false
	default:
		return true
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
