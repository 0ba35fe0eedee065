// Package ghostscript wraps the ghostscript pdfwrite device for
// concatenating PDFs into a single A4, PDF 1.4 output at a quality profile.
package ghostscript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sheaf/internal/fileutil"
	"sheaf/internal/quality"
	"sheaf/internal/services"
)

// Toolkit defines the behaviour the assembler needs.
type Toolkit interface {
	Concatenate(ctx context.Context, inputs []string, profile quality.Profile, outputPath string) error
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

// Client wraps ghostscript CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    services.Executor
}

// New constructs a ghostscript client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ghostscript binary required")
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

// Concatenate merges inputs, in order, into outputPath. Output is retargeted
// to A4 and normalized to PDF 1.4 with the profile's downsampling policy.
// Ghostscript writes to a sibling temp path; outputPath only appears once the
// merge fully succeeded, so a failed run never leaves partial output there.
func (c *Client) Concatenate(ctx context.Context, inputs []string, profile quality.Profile, outputPath string) error {
	if len(inputs) == 0 {
		return errors.New("no input files")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tempPath := outputPath + ".partial"
	defer os.Remove(tempPath)

	args := []string{
		"-dBATCH",
		"-dNOPAUSE",
		"-q",
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-sPAPERSIZE=a4",
	}
	args = append(args, profile.GhostscriptArgs()...)
	args = append(args, "-sOutputFile="+tempPath)
	args = append(args, inputs...)

	if err := c.exec.Run(runCtx, c.binary, args, nil); err != nil {
		return fmt.Errorf("ghostscript concatenate: %w", err)
	}
	if err := fileutil.NonEmptyFile(tempPath); err != nil {
		return fmt.Errorf("ghostscript concatenate: %w", err)
	}
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
