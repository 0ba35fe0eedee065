// Package pipeline drives a merge run end to end: classify the inputs, order
// the candidates, convert each one in its own working subdirectory, and
// assemble the ordered artifacts into the final PDF. Per-file failures skip
// the file and the run continues; stage failures abort. The run-scoped
// working area is released on every exit path.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sheaf/internal/assemble"
	"sheaf/internal/classify"
	"sheaf/internal/config"
	"sheaf/internal/convert"
	"sheaf/internal/deps"
	"sheaf/internal/history"
	"sheaf/internal/logging"
	"sheaf/internal/services"
	"sheaf/internal/workarea"
)

// Recorder persists finished runs; the history store implements it.
type Recorder interface {
	Record(ctx context.Context, run history.Run) (int64, error)
}

// BinaryChecker reports availability of external tools; deps.CheckBinaries
// in production, a stub in tests.
type BinaryChecker func([]deps.Requirement) []deps.Status

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithReporter installs a progress reporter.
func WithReporter(reporter Reporter) Option {
	return func(o *Orchestrator) {
		if reporter != nil {
			o.reporter = reporter
		}
	}
}

// WithRecorder installs a run-history recorder.
func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) { o.recorder = recorder }
}

// WithBinaryChecker overrides tool lookup (primarily for tests).
func WithBinaryChecker(checker BinaryChecker) Option {
	return func(o *Orchestrator) {
		if checker != nil {
			o.checkBinaries = checker
		}
	}
}

// Orchestrator owns one run at a time; it holds no cross-run state.
type Orchestrator struct {
	cfg           *config.Config
	logger        *slog.Logger
	classifier    *classify.Classifier
	strategies    convert.Set
	assembler     *assemble.Assembler
	reporter      Reporter
	recorder      Recorder
	checkBinaries BinaryChecker
}

// New constructs an Orchestrator.
func New(cfg *config.Config, logger *slog.Logger, classifier *classify.Classifier, strategies convert.Set, assembler *assemble.Assembler, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.Args(logging.String(logging.FieldComponent, "pipeline"))...)
	o := &Orchestrator{
		cfg:           cfg,
		logger:        logger,
		classifier:    classifier,
		strategies:    strategies,
		assembler:     assembler,
		reporter:      NopReporter{},
		checkBinaries: deps.CheckBinaries,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the pipeline for req. A returned error is always fatal for
// the run; per-file failures surface only through the reporter and the
// MergeResult counts.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*MergeResult, error) {
	started := time.Now()
	result, err := o.run(ctx, req)
	if o.recorder != nil {
		o.record(ctx, started, req, result, err)
	}
	return result, err
}

func (o *Orchestrator) run(ctx context.Context, req Request) (*MergeResult, error) {
	started := time.Now()
	if len(req.Inputs) == 0 {
		return nil, services.Wrap(services.ErrNoCandidates, "validating", "", "no input files supplied", nil)
	}

	candidates, skipped := o.classifyInputs(req.Inputs)
	if len(candidates) == 0 {
		return nil, services.Wrap(services.ErrNoCandidates, "classifying", "",
			fmt.Sprintf("none of the %d input files is convertible", len(req.Inputs)), nil)
	}

	if err := o.validateTools(candidates); err != nil {
		return nil, err
	}

	orderCandidates(candidates, req.Alphabetical)

	target := strings.TrimSpace(req.TargetPath)
	if target == "" {
		target = DeriveTarget(candidates[0].Classification.Path)
	}

	area, err := workarea.New(o.cfg.Paths.StagingDir)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "validating", "working area", "", err)
	}
	defer func() {
		if releaseErr := area.Release(); releaseErr != nil {
			o.logger.Warn("working area not fully released", logging.Args(logging.Error(releaseErr))...)
		}
	}()

	runLogger := o.logger.With(logging.Args(logging.String(logging.FieldRunID, area.RunID()))...)
	runLogger.Info("run started",
		logging.Args(
			logging.Int("inputs", len(req.Inputs)),
			logging.Int("candidates", len(candidates)),
			logging.String("profile", req.Profile.String()),
			logging.Bool("alphabetical", req.Alphabetical),
		)...)

	totalSteps := len(candidates) + 1
	ready, converted, failed, fatal := o.convertAll(ctx, runLogger, candidates, area, req.MaxWorkers, totalSteps)
	skipped += failed
	if ctx.Err() != nil {
		return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	if fatal != nil {
		return nil, fatal
	}
	if len(ready) == 0 {
		return nil, services.Wrap(services.ErrNoCandidates, "converting", "",
			"no compatible file produced a convertible artifact", nil)
	}

	o.reporter.Step(totalSteps, totalSteps, fmt.Sprintf("assembling %d files into %s", len(ready), filepath.Base(target)))
	pages, err := o.assembler.Merge(ctx, ready, req.Profile, target)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{
		OutputPath: target,
		Succeeded:  converted,
		Skipped:    skipped,
		Pages:      pages,
	}
	runLogger.Info("run completed",
		logging.Args(
			logging.String("output", target),
			logging.Int("succeeded", result.Succeeded),
			logging.Int("skipped", result.Skipped),
			logging.Int("pages", result.Pages),
			logging.Duration("elapsed", time.Since(started)),
		)...)
	return result, nil
}

// classifyInputs builds the candidate set. Unsupported files are dropped
// from the merge set but counted; unreadable files are surfaced through the
// reporter and counted the same way.
func (o *Orchestrator) classifyInputs(inputs []string) ([]*Candidate, int) {
	candidates := make([]*Candidate, 0, len(inputs))
	skipped := 0
	for _, input := range inputs {
		classification, err := o.classifier.Classify(input)
		if err != nil {
			o.reporter.FileError(input, err.Error())
			o.logger.Warn("input unreadable", logging.Args(logging.String(logging.FieldFile, input), logging.Error(err))...)
			skipped++
			continue
		}
		if !classification.Convertible() {
			o.logger.Debug("input unsupported",
				logging.Args(
					logging.String(logging.FieldFile, input),
					logging.String("media_type", classification.MediaType),
				)...)
			skipped++
			continue
		}
		candidates = append(candidates, &Candidate{Classification: classification})
	}
	return candidates, skipped
}

// validateTools fails fast when a binary the candidate set needs is absent.
// Runs before any file is copied or converted.
func (o *Orchestrator) validateTools(candidates []*Candidate) error {
	present := make(map[classify.Category]bool, len(candidates))
	for _, candidate := range candidates {
		present[candidate.Classification.Category] = true
	}
	needed := deps.ForCategories(deps.Requirements(o.cfg), present)
	for _, status := range o.checkBinaries(needed) {
		if !status.Available {
			return services.Wrap(services.ErrDependencyMissing, "validating", status.Name, status.Detail, nil)
		}
	}
	return nil
}

func orderCandidates(candidates []*Candidate, alphabetical bool) {
	if alphabetical {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Classification.Path < candidates[j].Classification.Path
		})
	}
	for i, candidate := range candidates {
		candidate.Index = i
	}
}

// DeriveTarget resolves the default output path for a run whose caller did
// not specify one: the first candidate's directory and basename, suffixed
// with -merged.pdf.
func DeriveTarget(firstCandidate string) string {
	dir := filepath.Dir(firstCandidate)
	base := strings.TrimSuffix(filepath.Base(firstCandidate), filepath.Ext(firstCandidate))
	return filepath.Join(dir, base+"-merged.pdf")
}

func (o *Orchestrator) record(ctx context.Context, started time.Time, req Request, result *MergeResult, runErr error) {
	run := history.Run{
		StartedAt:  started,
		FinishedAt: time.Now(),
		Profile:    req.Profile.String(),
		Status:     history.StatusCompleted,
	}
	if result != nil {
		run.OutputPath = result.OutputPath
		run.Succeeded = result.Succeeded
		run.Skipped = result.Skipped
		run.Pages = result.Pages
	} else {
		run.OutputPath = strings.TrimSpace(req.TargetPath)
	}
	if runErr != nil {
		run.Status = history.StatusFailed
		run.ErrorMessage = runErr.Error()
	}
	if _, err := o.recorder.Record(ctx, run); err != nil {
		o.logger.Warn("run not recorded in history", logging.Args(logging.Error(err))...)
	}
}
