package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheaf/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tool availability and directory access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreflightTable(results))

			if failures := preflight.Failures(results); len(failures) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failures))
			}
			return nil
		},
	}
}
