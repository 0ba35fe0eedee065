package convert

import (
	"context"

	"sheaf/internal/classify"
	"sheaf/internal/services"
	"sheaf/internal/services/soffice"
)

// DocumentToPdf renders office documents and plain text through the external
// document renderer, producing one PDF covering all pages of the source.
type DocumentToPdf struct {
	Renderer soffice.Renderer
}

func NewDocumentToPdf(renderer soffice.Renderer) *DocumentToPdf {
	return &DocumentToPdf{Renderer: renderer}
}

func (s *DocumentToPdf) Convert(ctx context.Context, source classify.Classification, jobDir string) (string, error) {
	isolated, err := isolate(source, jobDir)
	if err != nil {
		return "", err
	}

	artifact, err := s.Renderer.Render(ctx, isolated, jobDir)
	if err != nil {
		return "", services.Wrap(services.ErrConversion, "converting", "render document", source.Path, err)
	}
	return artifact, nil
}
