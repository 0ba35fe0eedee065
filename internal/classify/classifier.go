// Package classify inspects input files and resolves the conversion strategy
// category each one belongs to. Classification is total: any media type maps
// to exactly one category, with unrecognized types landing in Unsupported
// rather than failing.
package classify

import (
	"strings"
)

// legacy office binary formats carry exact MIME strings with no shared
// prefix, so they are matched verbatim.
var legacyOfficeTypes = map[string]struct{}{
	"application/msword":            {},
	"application/vnd.ms-word":       {},
	"application/vnd.ms-excel":      {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.ms-office":     {},
}

// pdfTypes covers the PDF family including compressed variants.
var pdfTypes = map[string]struct{}{
	"application/pdf":     {},
	"application/x-pdf":   {},
	"application/x-bzpdf": {},
	"application/x-gzpdf": {},
	"application/x-xzpdf": {},
}

var textTypes = map[string]struct{}{
	"text/plain":                {},
	"text/x-shellscript":        {},
	"application/x-shellscript": {},
}

// Classifier maps files to categories through an Inspector.
type Classifier struct {
	inspector Inspector
}

// New constructs a Classifier. A nil inspector defaults to content sniffing.
func New(inspector Inspector) *Classifier {
	if inspector == nil {
		inspector = SniffInspector{}
	}
	return &Classifier{inspector: inspector}
}

// Classify resolves the category for path. It only fails when the file
// cannot be read; unrecognized media types classify as Unsupported.
func (c *Classifier) Classify(path string) (Classification, error) {
	mediaType, err := c.inspector.Detect(path)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Path:      path,
		MediaType: mediaType,
		Category:  Categorize(mediaType),
	}, nil
}

// Categorize applies the ordered category rules to a media type string.
// The image prefix is checked before the generic document rules so that
// image-embedded container types never misclassify as documents.
func Categorize(mediaType string) Category {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return CategoryImage
	case strings.Contains(mediaType, "opendocument"):
		return CategoryOfficeDoc
	case strings.Contains(mediaType, "openxmlformats-officedocument"):
		return CategoryOfficeDoc
	case exact(legacyOfficeTypes, mediaType):
		return CategoryOfficeDoc
	case exact(pdfTypes, mediaType):
		return CategoryPDF
	case exact(textTypes, mediaType):
		return CategoryPlainText
	default:
		return CategoryUnsupported
	}
}

func exact(set map[string]struct{}, mediaType string) bool {
	_, ok := set[mediaType]
	return ok
}
