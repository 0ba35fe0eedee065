package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"sheaf/internal/pipeline"
)

// newConsoleReporter picks a progress renderer for the writer: an in-place
// bar on interactive terminals, plain step lines otherwise.
func newConsoleReporter(out io.Writer) pipeline.Reporter {
	if isTerminal(out) {
		return &barReporter{out: out}
	}
	return &plainReporter{out: out}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type barReporter struct {
	out io.Writer
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (r *barReporter) Step(index, total int, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(r.out),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		r.bar.Describe(description)
	}
	_ = r.bar.Set(index)
	if index >= total {
		_ = r.bar.Finish()
	}
}

func (r *barReporter) FileError(path, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Clear()
	}
	fmt.Fprintf(r.out, "skipped %s: %s\n", path, description)
}

type plainReporter struct {
	out io.Writer
	mu  sync.Mutex
}

func (r *plainReporter) Step(index, total int, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "[%d/%d] %s\n", index, total, description)
}

func (r *plainReporter) FileError(path, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "skipped %s: %s\n", path, description)
}
