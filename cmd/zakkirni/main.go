package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	zerrors "github.com/zakkirni/zakkirni/internal/errors"
	"github.com/zakkirni/zakkirni/internal/output"
	"github.com/zakkirni/zakkirni/internal/store"
	"github.com/zakkirni/zakkirni/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	dbPath     string
	formatter  output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zakkirni",
		Short: "A personal task tracker",
		Long:  "zakkirni - A personal task tracker with filtering, statistics and exportable reports.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the task database (defaults to XDG data dir)")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		showCmd(),
		doneCmd(),
		editCmd(),
		rmCmd(),
		statsCmd(),
		reportCmd(),
		importCmd(),
		prefsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getStore() (*store.Store, error) {
	return store.Open(dbPath)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// parseDueFlag turns a --due flag value into a due date. An empty value
// means no due date.
func parseDueFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, zerrors.InvalidDateError{Value: value}
	}
	return &d, nil
}

// addCmd implements 'zakkirni add'.
func addCmd() *cobra.Command {
	var description string
	var priority string
	var due string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			dueDate, err := parseDueFlag(due)
			if err != nil {
				printError(err)
			}

			t, err := s.Add(args[0], description, task.Priority(priority), dueDate)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t, time.Now()))
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

// showCmd implements 'zakkirni show'.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			t, err := s.Get(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t, time.Now()))
		},
	}
}

// doneCmd implements 'zakkirni done'.
func doneCmd() *cobra.Command {
	var allPending bool
	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle task completion",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			if allPending {
				snapshot, err := s.Snapshot()
				if err != nil {
					printError(err)
				}
				n := 0
				for _, t := range snapshot {
					if t.Completed {
						continue
					}
					if err := s.ToggleComplete(t.ID); err != nil {
						printError(err)
					}
					n++
				}
				printOutput(formatter.FormatMessage(fmt.Sprintf("Marked %d tasks as completed", n)))
				return
			}

			if len(args) == 0 {
				printError(fmt.Errorf("task id required (or use --all-pending)"))
			}
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			if err := s.ToggleComplete(id); err != nil {
				printError(err)
			}
			t, err := s.Get(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t, time.Now()))
		},
	}
	cmd.Flags().BoolVar(&allPending, "all-pending", false, "Mark every pending task as completed")
	return cmd
}

// editCmd implements 'zakkirni edit'.
func editCmd() *cobra.Command {
	var title, description, priority, due string
	var clearDue bool
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			t, err := s.Get(id)
			if err != nil {
				printError(err)
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("description") {
				t.Description = description
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = task.Priority(priority)
			}
			if clearDue {
				t.DueDate = nil
			} else if cmd.Flags().Changed("due") {
				dueDate, err := parseDueFlag(due)
				if err != nil {
					printError(err)
				}
				t.DueDate = dueDate
			}

			if err := s.Update(t); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t, time.Now()))
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	return cmd
}

// rmCmd implements 'zakkirni rm'.
func rmCmd() *cobra.Command {
	var completed bool
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			if completed {
				snapshot, err := s.Snapshot()
				if err != nil {
					printError(err)
				}
				n := 0
				for _, t := range snapshot {
					if !t.Completed {
						continue
					}
					if err := s.Delete(t.ID); err != nil {
						printError(err)
					}
					n++
				}
				printOutput(formatter.FormatMessage(fmt.Sprintf("Deleted %d completed tasks", n)))
				return
			}

			if len(args) == 0 {
				printError(fmt.Errorf("task id required (or use --completed)"))
			}
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			if err := s.Delete(id); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Deleted task %d", id)))
		},
	}
	cmd.Flags().BoolVar(&completed, "completed", false, "Delete every completed task")
	return cmd
}
