package convert

import (
	"context"
	"path/filepath"

	"sheaf/internal/classify"
	"sheaf/internal/fileutil"
	"sheaf/internal/services"
)

// PassThrough handles sources that already are PDFs: the artifact is a
// verbatim copy of the source bytes.
type PassThrough struct{}

func (PassThrough) Convert(_ context.Context, source classify.Classification, jobDir string) (string, error) {
	artifact := filepath.Join(jobDir, "source.pdf")
	if err := fileutil.CopyFileVerified(source.Path, artifact); err != nil {
		return "", services.Wrap(services.ErrConversion, "converting", "copy pdf", source.Path, err)
	}
	return artifact, nil
}
