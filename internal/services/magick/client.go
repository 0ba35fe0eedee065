// Package magick wraps ImageMagick for rasterizing images onto fixed-size
// PDF pages.
package magick

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sheaf/internal/fileutil"
	"sheaf/internal/services"
)

// Geometry describes the page box an image is rasterized into.
type Geometry struct {
	WidthPx     int
	HeightPx    int
	DPI         int
	JPEGQuality int
}

// A4At300DPI is the default page geometry: A4 paper (8.27in x 11.70in) at a
// 300 DPI target, lossy-compressed at quality 95.
var A4At300DPI = Geometry{
	WidthPx:     2481, // 300 dpi x 8.27 in
	HeightPx:    3510, // 300 dpi x 11.70 in
	DPI:         300,
	JPEGQuality: 95,
}

// Rasterizer defines the behaviour the image conversion strategy needs.
type Rasterizer interface {
	Rasterize(ctx context.Context, imagePath, destPath string, geom Geometry) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ImageMagick CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    services.Executor
}

// New constructs an ImageMagick client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("imagemagick binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Rasterize renders imagePath onto a single PDF page at destPath. The image
// is scaled to cover the page box and center-cropped to fill it exactly, so
// no undefined canvas remains.
func (c *Client) Rasterize(ctx context.Context, imagePath, destPath string, geom Geometry) error {
	if geom.WidthPx <= 0 || geom.HeightPx <= 0 {
		geom = A4At300DPI
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	extent := fmt.Sprintf("%dx%d", geom.WidthPx, geom.HeightPx)
	args := []string{
		imagePath,
		"-resize", extent + "^",
		"-gravity", "center",
		"-extent", extent,
		"-units", "PixelsPerInch",
		"-density", fmt.Sprintf("%dx%d", geom.DPI, geom.DPI),
		"-compress", "JPEG",
		"-quality", fmt.Sprintf("%d", geom.JPEGQuality),
		destPath,
	}

	if err := c.exec.Run(runCtx, c.binary, args, nil); err != nil {
		return fmt.Errorf("imagemagick rasterize: %w", err)
	}
	if err := fileutil.NonEmptyFile(destPath); err != nil {
		return fmt.Errorf("imagemagick rasterize: %w", err)
	}
	return nil
}
