package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakkirni/zakkirni/internal/importer"
	"github.com/zakkirni/zakkirni/internal/store"
)

// prefsCmd implements 'zakkirni prefs'. Without flags it prints the saved
// view preferences; with flags it updates them.
func prefsCmd() *cobra.Command {
	var viewMode, sortBy, status, priority, due string
	var pageSize int
	var reset bool
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved view preferences",
		Run: func(cmd *cobra.Command, _ []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			prefs := s.LoadViewPrefs()
			if reset {
				prefs = store.DefaultViewPrefs()
			}
			changed := reset
			if cmd.Flags().Changed("view") {
				prefs.ViewMode = viewMode
				changed = true
			}
			if cmd.Flags().Changed("page-size") {
				prefs.PageSize = pageSize
				changed = true
			}
			if cmd.Flags().Changed("sort") {
				prefs.SortBy = sortBy
				changed = true
			}
			if cmd.Flags().Changed("status") {
				prefs.Status = status
				changed = true
			}
			if cmd.Flags().Changed("priority") {
				prefs.Priority = priority
				changed = true
			}
			if cmd.Flags().Changed("due") {
				prefs.DueDate = due
				changed = true
			}
			if changed {
				if err := s.SaveViewPrefs(prefs); err != nil {
					printError(err)
				}
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "view:      %s\n", prefs.ViewMode)
			fmt.Fprintf(&sb, "page-size: %d\n", prefs.PageSize)
			fmt.Fprintf(&sb, "sort:      %s\n", prefs.SortBy)
			fmt.Fprintf(&sb, "status:    %s\n", prefs.Status)
			fmt.Fprintf(&sb, "priority:  %s\n", prefs.Priority)
			fmt.Fprintf(&sb, "due:       %s\n", prefs.DueDate)
			printOutput(formatter.FormatMessage(sb.String()))
		},
	}
	cmd.Flags().StringVar(&viewMode, "view", "list", "View mode (list, grid)")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Tasks per page")
	cmd.Flags().StringVar(&sortBy, "sort", "created-desc", "Default sort order")
	cmd.Flags().StringVar(&status, "status", "all", "Default status filter")
	cmd.Flags().StringVarP(&priority, "priority", "p", "all", "Default priority filter")
	cmd.Flags().StringVar(&due, "due", "all", "Default due bucket filter")
	cmd.Flags().BoolVar(&reset, "reset", false, "Reset preferences to defaults")
	return cmd
}

// importCmd implements 'zakkirni import'.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import tasks from a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				printError(err)
			}
			n, err := importer.Import(s, string(data))
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Imported %d tasks", n)))
		},
	}
}
