package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zakkirni/zakkirni/internal/page"
	"github.com/zakkirni/zakkirni/internal/query"
)

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

// listCmd implements 'zakkirni list'. Flag defaults come from the saved
// view preferences so a bare 'list' looks the way the user left it.
func listCmd() *cobra.Command {
	var status, priority, due, sortBy, search string
	var pageNum, pageSize int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			s, err := getStore()
			if err != nil {
				printError(err)
			}
			defer s.Close()

			prefs := s.LoadViewPrefs()

			p := query.Params{
				Status:   query.ParseStatus(prefs.Status),
				Priority: query.ParsePriorityFilter(prefs.Priority),
				Due:      query.ParseDueBucket(prefs.DueDate),
				Sort:     query.ParseSort(prefs.SortBy),
				Page:     1,
				PageSize: prefs.PageSize,
			}
			if cmd.Flags().Changed("status") {
				p.Status = query.ParseStatus(status)
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = query.ParsePriorityFilter(priority)
			}
			if cmd.Flags().Changed("due") {
				p.Due = query.ParseDueBucket(due)
			}
			if cmd.Flags().Changed("sort") {
				p.Sort = query.ParseSort(sortBy)
			}
			if cmd.Flags().Changed("page-size") {
				p.PageSize = pageSize
			}
			p.Search = search
			p.Page = pageNum

			tasks, err := s.Snapshot()
			if err != nil {
				printError(err)
			}

			now := time.Now()
			view := query.FilterAndSort(tasks, p, now)
			res := page.Paginate(view, p.Page, p.PageSize)
			printOutput(formatter.FormatTaskList(res, now))
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (all, pending, completed, overdue)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "all", "Filter by priority (all, high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "all", "Filter by due bucket (all, today, tomorrow, this-week, no-date)")
	cmd.Flags().StringVar(&sortBy, "sort", "created-desc", "Sort order (created-desc, created-asc, priority-desc, due-date-asc, alphabetical)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search in title and description")
	cmd.Flags().IntVar(&pageNum, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Tasks per page")
	return cmd
}
