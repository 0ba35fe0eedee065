// Package convert holds the per-category conversion strategies that
// normalize an input file into a single PDF artifact inside its job
// directory. Every strategy works on an isolated copy of the source so the
// original is never touched and converter side effects stay contained.
package convert

import (
	"context"
	"path/filepath"

	"sheaf/internal/classify"
	"sheaf/internal/fileutil"
	"sheaf/internal/services"
)

// Strategy converts one classified input into a PDF artifact under jobDir
// and returns the artifact path.
type Strategy interface {
	Convert(ctx context.Context, source classify.Classification, jobDir string) (string, error)
}

// Set maps categories to their strategies.
type Set struct {
	PassThrough Strategy
	Image       Strategy
	Document    Strategy
}

// ForCategory resolves the strategy for a category. PlainText routes through
// the document renderer.
func (s Set) ForCategory(category classify.Category) (Strategy, bool) {
	switch category {
	case classify.CategoryPDF:
		return s.PassThrough, s.PassThrough != nil
	case classify.CategoryImage:
		return s.Image, s.Image != nil
	case classify.CategoryOfficeDoc, classify.CategoryPlainText:
		return s.Document, s.Document != nil
	default:
		return nil, false
	}
}

// isolate copies the source into jobDir, preserving the extension so
// extension-sensitive converters keep working.
func isolate(source classify.Classification, jobDir string) (string, error) {
	isolated := filepath.Join(jobDir, "source"+filepath.Ext(source.Path))
	if err := fileutil.CopyFileVerified(source.Path, isolated); err != nil {
		return "", services.Wrap(services.ErrConversion, "converting", "isolate source", source.Path, err)
	}
	return isolated, nil
}
