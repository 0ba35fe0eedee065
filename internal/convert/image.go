package convert

import (
	"context"
	"path/filepath"

	"sheaf/internal/classify"
	"sheaf/internal/services"
	"sheaf/internal/services/magick"
)

// ImageToPdf rasterizes an image onto a single fixed-size PDF page.
type ImageToPdf struct {
	Rasterizer magick.Rasterizer
	Geometry   magick.Geometry
}

// NewImageToPdf builds the strategy with the default A4/300dpi page box.
func NewImageToPdf(rasterizer magick.Rasterizer) *ImageToPdf {
	return &ImageToPdf{Rasterizer: rasterizer, Geometry: magick.A4At300DPI}
}

func (s *ImageToPdf) Convert(ctx context.Context, source classify.Classification, jobDir string) (string, error) {
	isolated, err := isolate(source, jobDir)
	if err != nil {
		return "", err
	}

	artifact := filepath.Join(jobDir, "page.pdf")
	if err := s.Rasterizer.Rasterize(ctx, isolated, artifact, s.Geometry); err != nil {
		return "", services.Wrap(services.ErrConversion, "converting", "rasterize image", source.Path, err)
	}
	return artifact, nil
}
