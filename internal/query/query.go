// Package query turns a task snapshot plus query parameters into an
// ordered view. All functions are pure over their inputs.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zakkirni/zakkirni/internal/task"
)

// Status selects tasks by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

// PriorityFilter selects tasks by priority, or all of them.
type PriorityFilter string

const (
	PriorityAll PriorityFilter = "all"
)

// DueBucket selects tasks by due-date range.
type DueBucket string

const (
	DueAll      DueBucket = "all"
	DueToday    DueBucket = "today"
	DueTomorrow DueBucket = "tomorrow"
	DueThisWeek DueBucket = "this-week"
	DueNoDate   DueBucket = "no-date"
)

// Sort names an ordering of the filtered view.
type Sort string

const (
	SortCreatedDesc  Sort = "created-desc"
	SortCreatedAsc   Sort = "created-asc"
	SortPriorityDesc Sort = "priority-desc"
	SortDueDateAsc   Sort = "due-date-asc"
	SortAlphabetical Sort = "alphabetical"
)

// ParseStatus maps a string to a Status, defaulting to StatusAll.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusOverdue:
		return Status(s)
	default:
		return StatusAll
	}
}

// ParsePriorityFilter maps a string to a PriorityFilter, defaulting to all.
func ParsePriorityFilter(s string) PriorityFilter {
	if task.IsValidPriority(task.Priority(s)) {
		return PriorityFilter(s)
	}
	return PriorityAll
}

// ParseDueBucket maps a string to a DueBucket, defaulting to DueAll.
func ParseDueBucket(s string) DueBucket {
	switch DueBucket(s) {
	case DueToday, DueTomorrow, DueThisWeek, DueNoDate:
		return DueBucket(s)
	default:
		return DueAll
	}
}

// ParseSort maps a string to a Sort, defaulting to SortCreatedDesc.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortCreatedAsc, SortPriorityDesc, SortDueDateAsc, SortAlphabetical:
		return Sort(s)
	default:
		return SortCreatedDesc
	}
}

// Params describes one query over a snapshot.
type Params struct {
	Status   Status
	Priority PriorityFilter
	Due      DueBucket
	Sort     Sort
	Search   string
	Page     int
	PageSize int
	// Lang controls the collation used by the alphabetical sort.
	// The zero value collates language-neutrally.
	Lang language.Tag
}

// DefaultParams returns the neutral query: everything, newest first.
func DefaultParams() Params {
	return Params{
		Status:   StatusAll,
		Priority: PriorityAll,
		Due:      DueAll,
		Sort:     SortCreatedDesc,
		Page:     1,
		PageSize: 10,
	}
}

// HasActiveFilters reports whether any filter or a non-default sort is set.
func (p Params) HasActiveFilters() bool {
	return p.Status != StatusAll ||
		p.Priority != PriorityAll ||
		p.Due != DueAll ||
		strings.TrimSpace(p.Search) != "" ||
		p.Sort != SortCreatedDesc
}

// FilterAndSort applies the params' filters to the snapshot, then orders the
// result. Filters compose by logical AND and always run before sorting.
// The input slice is not modified.
func FilterAndSort(tasks []task.Task, p Params, now time.Time) []task.Task {
	view := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchStatus(t, p.Status, now) &&
			matchPriority(t, p.Priority) &&
			matchDue(t, p.Due, now) &&
			matchSearch(t, p.Search) {
			view = append(view, t)
		}
	}
	sortTasks(view, p.Sort, p.Lang)
	return view
}

func matchStatus(t task.Task, s Status, now time.Time) bool {
	switch s {
	case StatusCompleted:
		return t.Completed
	case StatusPending:
		return !t.Completed && !t.Overdue(now)
	case StatusOverdue:
		return !t.Completed && t.Overdue(now)
	default:
		return true
	}
}

func matchPriority(t task.Task, p PriorityFilter) bool {
	return p == PriorityAll || t.Priority == task.Priority(p)
}

func matchDue(t task.Task, b DueBucket, now time.Time) bool {
	switch b {
	case DueToday:
		return t.DueToday(now)
	case DueTomorrow:
		return t.DueTomorrow(now)
	case DueThisWeek:
		return t.DueWithinWeek(now)
	case DueNoDate:
		return t.DueDate == nil
	default:
		return true
	}
}

func matchSearch(t task.Task, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), term)
}

func sortTasks(tasks []task.Task, s Sort, lang language.Tag) {
	switch s {
	case SortCreatedAsc:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortPriorityDesc:
		// No secondary key: equal priorities keep their prior order.
		sort.SliceStable(tasks, func(i, j int) bool {
			return task.PriorityRank(tasks[i].Priority) > task.PriorityRank(tasks[j].Priority)
		})
	case SortDueDateAsc:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil:
				return false // undated tasks sort last
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortAlphabetical:
		c := collate.New(lang)
		sort.SliceStable(tasks, func(i, j int) bool {
			return c.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}
