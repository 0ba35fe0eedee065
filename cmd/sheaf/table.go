package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sheaf/internal/history"
	"sheaf/internal/pipeline"
	"sheaf/internal/preflight"
	"sheaf/internal/quality"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// rightAligned builds column configs for count columns, keeping headers
// left-aligned like the rest of the table.
func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, number := range columns {
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	return configs
}

func renderMergeSummary(result *pipeline.MergeResult, profile quality.Profile) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Output", "Merged", "Skipped", "Pages", "Profile"})
	tw.AppendRow(table.Row{result.OutputPath, result.Succeeded, result.Skipped, result.Pages, profile.String()})
	tw.SetColumnConfigs(rightAligned(2, 3, 4))
	return tw.Render()
}

type inspectRow struct {
	path      string
	mediaType string
	category  string
	pages     string
	mergeable bool
}

func renderInspectTable(rows []inspectRow) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"File", "Media Type", "Category", "Pages", "Mergeable"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.path, row.mediaType, row.category, row.pages, yesNo(row.mergeable)})
	}
	tw.SetColumnConfigs(rightAligned(4))
	return tw.Render()
}

func renderPreflightTable(results []preflight.Result) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})
	for _, result := range results {
		status := "ok"
		if !result.Passed {
			status = "missing"
		}
		tw.AppendRow(table.Row{result.Name, status, result.Detail})
	}
	return tw.Render()
}

func renderHistoryTable(runs []history.Run) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "Finished", "Status", "Profile", "Merged", "Skipped", "Pages", "Output"})
	for _, run := range runs {
		detail := run.OutputPath
		if run.Status == history.StatusFailed && run.ErrorMessage != "" {
			detail = run.ErrorMessage
		}
		tw.AppendRow(table.Row{
			run.ID,
			run.FinishedAt.Local().Format("2006-01-02 15:04"),
			run.Status,
			run.Profile,
			run.Succeeded,
			run.Skipped,
			run.Pages,
			detail,
		})
	}
	tw.SetColumnConfigs(rightAligned(1, 5, 6, 7))
	return tw.Render()
}
