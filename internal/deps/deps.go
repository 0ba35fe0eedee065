// Package deps declares the external converter binaries sheaf relies on and
// checks their availability.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"sheaf/internal/classify"
	"sheaf/internal/config"
)

// Requirement defines an external dependency sheaf relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// Categories lists the media categories whose conversion needs this
	// tool; empty means every run needs it.
	Categories []classify.Category
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the full dependency set for the configured tools.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "Ghostscript",
			Command:     cfg.Tools.GsCommand,
			Description: "concatenates converted PDFs into the final output",
		},
		{
			Name:        "ImageMagick",
			Command:     cfg.Tools.MagickCommand,
			Description: "rasterizes images onto A4 PDF pages",
			Categories:  []classify.Category{classify.CategoryImage},
		},
		{
			Name:        "LibreOffice",
			Command:     cfg.Tools.SofficeCommand,
			Description: "renders office documents and plain text to PDF",
			Categories:  []classify.Category{classify.CategoryOfficeDoc, classify.CategoryPlainText},
		},
	}
}

// ForCategories filters requirements to those a run over the given
// categories actually needs.
func ForCategories(requirements []Requirement, present map[classify.Category]bool) []Requirement {
	needed := make([]Requirement, 0, len(requirements))
	for _, req := range requirements {
		if len(req.Categories) == 0 {
			needed = append(needed, req)
			continue
		}
		for _, category := range req.Categories {
			if present[category] {
				needed = append(needed, req)
				break
			}
		}
	}
	return needed
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
