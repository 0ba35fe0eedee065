package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"sheaf/internal/logging"
	"sheaf/internal/services"
	"sheaf/internal/workarea"
)

type outcome struct {
	index    int
	artifact string
	err      error
}

// convertAll runs every candidate through its strategy with at most
// maxWorkers conversions in flight. The returned ready list preserves
// candidate order no matter when individual workers finish, and progress
// steps are reported in candidate order by buffering out-of-order
// completions. Per-file conversion failures are reported and skipped; any
// other failure (services.Fatal) is returned and aborts the run.
func (o *Orchestrator) convertAll(ctx context.Context, logger *slog.Logger, candidates []*Candidate, area *workarea.Area, maxWorkers, totalSteps int) (ready []string, converted, failed int, fatal error) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	outcomes := make(chan outcome, len(candidates))
	var wg sync.WaitGroup

	for _, candidate := range candidates {
		wg.Add(1)
		go func(c *Candidate) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				outcomes <- outcome{index: c.Index, err: ctx.Err()}
				return
			}
			artifact, err := o.convertOne(ctx, logger, c, area)
			outcomes <- outcome{index: c.Index, artifact: artifact, err: err}
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Reorder buffer: report and collect in candidate order so the merge
	// input and the progress stream stay deterministic.
	buffered := make(map[int]outcome, len(candidates))
	next := 0
	artifacts := make([]string, len(candidates))
	succeeded := make([]bool, len(candidates))

	for out := range outcomes {
		buffered[out.index] = out
		for {
			current, ok := buffered[next]
			if !ok {
				break
			}
			delete(buffered, next)
			candidate := candidates[next]
			name := filepath.Base(candidate.Classification.Path)
			if current.err != nil && services.Fatal(current.err) {
				if fatal == nil {
					fatal = current.err
				}
				next++
				continue
			}
			if current.err != nil {
				failed++
				o.reporter.Step(next+1, totalSteps, fmt.Sprintf("skipped %s", name))
				o.reporter.FileError(candidate.Classification.Path, current.err.Error())
				logger.Warn("conversion failed",
					logging.Args(
						logging.String(logging.FieldFile, candidate.Classification.Path),
						logging.String(logging.FieldCategory, string(candidate.Classification.Category)),
						logging.Error(current.err),
					)...)
			} else {
				converted++
				artifacts[next] = current.artifact
				succeeded[next] = true
				o.reporter.Step(next+1, totalSteps, fmt.Sprintf("converted %s", name))
			}
			next++
		}
	}

	for i, artifact := range artifacts {
		if succeeded[i] {
			ready = append(ready, artifact)
		}
	}
	return ready, converted, failed, fatal
}

// convertOne isolates and converts a single candidate in its own job
// directory.
func (o *Orchestrator) convertOne(ctx context.Context, logger *slog.Logger, candidate *Candidate, area *workarea.Area) (string, error) {
	strategy, ok := o.strategies.ForCategory(candidate.Classification.Category)
	if !ok {
		return "", fmt.Errorf("no strategy for category %s", candidate.Classification.Category)
	}
	jobDir, err := area.JobDir(candidate.Index)
	if err != nil {
		return "", err
	}
	logger.Debug("converting",
		logging.Args(
			logging.String(logging.FieldFile, candidate.Classification.Path),
			logging.String(logging.FieldCategory, string(candidate.Classification.Category)),
			logging.String(logging.FieldStage, "converting"),
		)...)
	return strategy.Convert(ctx, candidate.Classification, jobDir)
}
