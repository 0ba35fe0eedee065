package classify

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the media category a file classifies into. Every category
// except Unsupported maps to exactly one conversion strategy.
type Category string

const (
	CategoryPDF         Category = "pdf"
	CategoryImage       Category = "image"
	CategoryOfficeDoc   Category = "office_document"
	CategoryPlainText   Category = "plain_text"
	CategoryUnsupported Category = "unsupported"
)

// Classification couples a file path with its detected media type and
// category. Immutable once produced.
type Classification struct {
	Path      string
	MediaType string
	Category  Category
}

// Convertible reports whether the file participates in the merge.
func (c Classification) Convertible() bool {
	return c.Category != CategoryUnsupported
}

var labelCaser = cases.Title(language.English)

// Label returns a human-readable category name for CLI output.
func (c Category) Label() string {
	switch c {
	case CategoryPDF:
		return "PDF"
	case CategoryOfficeDoc:
		return labelCaser.String("office document")
	case CategoryPlainText:
		return labelCaser.String("plain text")
	default:
		return labelCaser.String(string(c))
	}
}
