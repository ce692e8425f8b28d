package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	zerrors "github.com/zakkirni/zakkirni/internal/errors"
	"github.com/zakkirni/zakkirni/internal/query"
	"github.com/zakkirni/zakkirni/internal/report"
	"github.com/zakkirni/zakkirni/internal/stats"
)

// reportCmd implements 'zakkirni report'. The report covers the filtered
// view, not the whole store, so the filter flags mirror 'list'.
func reportCmd() *cobra.Command {
	var status, priority, due, sortBy, search string
	var toStdout, toClipboard bool
	var outPath string
	cmd := &cobra.Command{
		Use:   "report <text|csv|html>",
		Short: "Export a task report",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			format := report.Format(args[0])
			if !report.IsValidFormat(format) {
				printError(fmt.Errorf("unknown report format %q (want text, csv or html)", args[0]))
			}

			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			tasks, err := s.Snapshot()
			if err != nil {
				printError(err)
			}

			now := time.Now()
			p := query.DefaultParams()
			p.Status = query.ParseStatus(status)
			p.Priority = query.ParsePriorityFilter(priority)
			p.Due = query.ParseDueBucket(due)
			p.Sort = query.ParseSort(sortBy)
			p.Search = search
			view := query.FilterAndSort(tasks, p, now)
			if len(view) == 0 {
				printError(zerrors.NothingToExportError{})
			}

			st := stats.Compute(view, now)
			doc, err := report.Render(view, st, format, now)
			if err != nil {
				printError(err)
			}

			if toClipboard {
				if format != report.FormatText {
					printError(fmt.Errorf("only text reports can be copied to the clipboard"))
				}
				if err := clipboard.WriteAll(string(doc.Data)); err != nil {
					printError(zerrors.ExportError{Format: string(format), Err: err})
				}
				printOutput(formatter.FormatMessage("Report copied to clipboard"))
				return
			}

			if toStdout {
				os.Stdout.Write(doc.Data) //nolint:gosec // stdout write errors are unrecoverable
				return
			}

			path := outPath
			if path == "" {
				path = doc.Filename
			}
			if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
				printError(zerrors.ExportError{Format: string(format), Err: err})
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Report written to %s", path)))
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (all, pending, completed, overdue)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "all", "Filter by priority (all, high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "all", "Filter by due bucket (all, today, tomorrow, this-week, no-date)")
	cmd.Flags().StringVar(&sortBy, "sort", "created-desc", "Sort order")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search in title and description")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the report to stdout instead of a file")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the report to the clipboard (text format only)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (defaults to tasks_report_<date>.<ext>)")
	return cmd
}

// statsCmd implements 'zakkirni stats'.
func statsCmd() *cobra.Command {
	var tip bool
	var period int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Run: func(cmd *cobra.Command, _ []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			now := time.Now()
			if tip {
				printOutput(formatter.FormatMessage(stats.DailyTip(now)))
				return
			}

			tasks, err := s.Snapshot()
			if err != nil {
				printError(err)
			}

			if cmd.Flags().Changed("period") {
				score := stats.ProductivityForPeriod(tasks, period, now)
				printOutput(formatter.FormatMessage(
					fmt.Sprintf("Productivity over the last %d days: %d/100", period, score)))
				return
			}

			printOutput(formatter.FormatStats(stats.Compute(tasks, now)))
		},
	}
	cmd.Flags().BoolVar(&tip, "tip", false, "Show the tip of the day")
	cmd.Flags().IntVar(&period, "period", 7, "Score productivity over the last N days")
	return cmd
}
