package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"sheaf/internal/assemble"
	"sheaf/internal/classify"
	"sheaf/internal/config"
	"sheaf/internal/convert"
	"sheaf/internal/history"
	"sheaf/internal/pipeline"
	"sheaf/internal/quality"
	"sheaf/internal/services/ghostscript"
	"sheaf/internal/services/magick"
	"sheaf/internal/services/soffice"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var alphabetical bool
	var workers int
	profileFlags := map[quality.Profile]*bool{}

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Convert the given files and merge them into one PDF",
		Long: `Classify the given files, convert each one to PDF with the matching
external tool, and merge the results in order into a single output PDF.
Unsupported and failing files are skipped; the run only fails when nothing
can be merged or a required tool is missing.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				// SilenceUsage hides usage even for argument errors, so
				// include it in the message.
				return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			profile, err := resolveProfile(cfg, profileFlags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("alpha") {
				alphabetical = cfg.Merge.Alphabetical
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Merge.MaxWorkers
			}

			target := strings.TrimSpace(targetPath)
			if target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve target path: %w", err)
				}
				target = expanded
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			release, err := ctx.acquireRunLock()
			if err != nil {
				return err
			}
			defer release()

			rasterizer, err := magick.New(cfg.Tools.MagickCommand, cfg.Tools.ConvertTimeout)
			if err != nil {
				return err
			}
			renderer, err := soffice.New(cfg.Tools.SofficeCommand, cfg.Tools.RenderTimeout)
			if err != nil {
				return err
			}
			toolkit, err := ghostscript.New(cfg.Tools.GsCommand, cfg.Tools.AssembleTimeout)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			orchestrator := pipeline.New(cfg, logger, classify.New(nil),
				convert.Set{
					PassThrough: convert.PassThrough{},
					Image:       convert.NewImageToPdf(rasterizer),
					Document:    convert.NewDocumentToPdf(renderer),
				},
				assemble.New(toolkit),
				pipeline.WithReporter(newConsoleReporter(cmd.OutOrStdout())),
				pipeline.WithRecorder(store),
			)

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := orchestrator.Run(signalCtx, pipeline.Request{
				Inputs:       args,
				Alphabetical: alphabetical,
				TargetPath:   target,
				Profile:      profile,
				MaxWorkers:   workers,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderMergeSummary(result, profile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "target", "t", "", "Output PDF path (default: <first file>-merged.pdf)")
	cmd.Flags().BoolVar(&alphabetical, "alpha", false, "Merge in alphabetical order instead of argument order")
	cmd.Flags().IntVar(&workers, "workers", 0, "Maximum concurrent conversions (default from config)")
	for _, profile := range quality.All() {
		flag := new(bool)
		profileFlags[profile] = flag
		cmd.Flags().BoolVar(flag, profile.String(), false, fmt.Sprintf("Use the %s quality profile", profile))
	}
	return cmd
}

// resolveProfile maps the mutually exclusive quality flags to a profile,
// falling back to the configured default when none is set.
func resolveProfile(cfg *config.Config, flags map[quality.Profile]*bool) (quality.Profile, error) {
	var selected []quality.Profile
	for profile, set := range flags {
		if set != nil && *set {
			selected = append(selected, profile)
		}
	}
	switch len(selected) {
	case 0:
		return quality.Parse(cfg.Merge.Quality)
	case 1:
		return selected[0], nil
	default:
		return "", fmt.Errorf("choose at most one quality profile flag")
	}
}
