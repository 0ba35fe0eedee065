// Package soffice wraps LibreOffice headless mode for rendering office
// documents and plain text to PDF.
package soffice

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sheaf/internal/fileutil"
	"sheaf/internal/services"
)

// Renderer defines the behaviour the document conversion strategy needs.
type Renderer interface {
	Render(ctx context.Context, docPath, outDir string) (string, error)
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

// Client wraps LibreOffice CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    services.Executor
}

// New constructs a LibreOffice client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("libreoffice binary required")
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

// Render converts docPath to a PDF inside outDir, covering all pages of the
// source document, and returns the produced path. LibreOffice names the
// output after the source basename; Render resolves and verifies it.
func (c *Client) Render(ctx context.Context, docPath, outDir string) (string, error) {
	if strings.TrimSpace(outDir) == "" {
		return "", errors.New("output directory required")
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"--headless",
		"--norestore",
		"--convert-to", "pdf",
		"--outdir", outDir,
		docPath,
	}
	if err := c.exec.Run(runCtx, c.binary, args, nil); err != nil {
		return "", fmt.Errorf("libreoffice render: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	produced := filepath.Join(outDir, base+".pdf")
	if err := fileutil.NonEmptyFile(produced); err != nil {
		return "", fmt.Errorf("libreoffice render: %w", err)
	}
	return produced, nil
}
