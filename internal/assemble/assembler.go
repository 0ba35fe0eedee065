// Package assemble merges the ordered ready list into the final output PDF
// and verifies the result before reporting success.
package assemble

import (
	"context"
	"fmt"
	"os"

	"sheaf/internal/pdfcheck"
	"sheaf/internal/quality"
	"sheaf/internal/services"
	"sheaf/internal/services/ghostscript"
)

// Checker validates PDF artifacts; the default uses pdfcpu.
type Checker interface {
	Verify(path string) error
	PageCount(path string) (int, error)
}

type pdfcpuChecker struct{}

func (pdfcpuChecker) Verify(path string) error           { return pdfcheck.Verify(path) }
func (pdfcpuChecker) PageCount(path string) (int, error) { return pdfcheck.PageCount(path) }

// Option configures the assembler.
type Option func(*Assembler)

// WithChecker injects a custom output checker (primarily for tests).
func WithChecker(checker Checker) Option {
	return func(a *Assembler) {
		if checker != nil {
			a.checker = checker
		}
	}
}

// Assembler concatenates converted PDFs through the external toolkit.
type Assembler struct {
	toolkit ghostscript.Toolkit
	checker Checker
}

// New constructs an Assembler.
func New(toolkit ghostscript.Toolkit, opts ...Option) *Assembler {
	assembler := &Assembler{toolkit: toolkit, checker: pdfcpuChecker{}}
	for _, opt := range opts {
		opt(assembler)
	}
	return assembler
}

// Merge concatenates orderedPaths into outputPath at the given profile and
// returns the page count of the verified output. Any failure is ErrAssembly;
// the toolkit guarantees no partial file remains at outputPath.
func (a *Assembler) Merge(ctx context.Context, orderedPaths []string, profile quality.Profile, outputPath string) (int, error) {
	if len(orderedPaths) == 0 {
		return 0, services.Wrap(services.ErrAssembly, "assembling", "merge", "empty ready list", nil)
	}
	for _, path := range orderedPaths {
		if _, err := os.Stat(path); err != nil {
			return 0, services.Wrap(services.ErrAssembly, "assembling", "merge", fmt.Sprintf("artifact missing: %s", path), err)
		}
	}

	if err := a.toolkit.Concatenate(ctx, orderedPaths, profile, outputPath); err != nil {
		return 0, services.Wrap(services.ErrAssembly, "assembling", "concatenate", "", err)
	}

	if err := a.checker.Verify(outputPath); err != nil {
		_ = os.Remove(outputPath)
		return 0, services.Wrap(services.ErrAssembly, "assembling", "verify output", "", err)
	}
	pages, err := a.checker.PageCount(outputPath)
	if err != nil {
		return 0, services.Wrap(services.ErrAssembly, "assembling", "count pages", "", err)
	}
	return pages, nil
}
