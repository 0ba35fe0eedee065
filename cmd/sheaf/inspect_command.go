package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sheaf/internal/classify"
	"sheaf/internal/pdfcheck"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Show how files would be classified without converting them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := classify.New(nil)
			rows := make([]inspectRow, 0, len(args))
			for _, path := range args {
				classification, err := classifier.Classify(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "cannot read %s: %v\n", path, err)
					rows = append(rows, inspectRow{path: path, mediaType: "-", category: "Unreadable", pages: "-"})
					continue
				}
				pages := "-"
				if classification.Category == classify.CategoryPDF {
					if count, err := pdfcheck.PageCount(path); err == nil {
						pages = strconv.Itoa(count)
					}
				}
				rows = append(rows, inspectRow{
					path:      path,
					mediaType: classification.MediaType,
					category:  classification.Category.Label(),
					pages:     pages,
					mergeable: classification.Convertible(),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(rows))
			return nil
		},
	}
}
