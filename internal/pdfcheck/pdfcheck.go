// Package pdfcheck verifies PDF artifacts and reads their page counts with
// pdfcpu, without shelling out. The assembler uses it to confirm converter
// and merge output before anything reaches the final destination.
package pdfcheck

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func relaxedConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	// External converters produce slightly malformed but renderable files;
	// strict validation would reject output every viewer accepts.
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Verify confirms path holds a structurally sound PDF.
func Verify(path string) error {
	if err := api.ValidateFile(path, relaxedConfig()); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count %s: %w", path, err)
	}
	return count, nil
}
