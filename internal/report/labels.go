package report

import (
	"time"

	"github.com/zakkirni/zakkirni/internal/task"
)

// The label and color tables below are the single source of truth for every
// report format. Formats must not carry their own wording.

// PriorityLabel returns the display label for a priority.
func PriorityLabel(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "High"
	case task.PriorityMedium:
		return "Medium"
	case task.PriorityLow:
		return "Low"
	default:
		return "Unset"
	}
}

// PriorityColor returns the accent color for a priority.
func PriorityColor(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "#ef4444"
	case task.PriorityMedium:
		return "#f59e0b"
	case task.PriorityLow:
		return "#10b981"
	default:
		return "#6b7280"
	}
}

// StatusLabel returns the display label for a task's state.
func StatusLabel(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "Completed"
	case t.Overdue(now):
		return "Overdue"
	default:
		return "Pending"
	}
}

// StatusClass returns the CSS class name for a task's state.
func StatusClass(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "completed"
	case t.Overdue(now):
		return "overdue"
	default:
		return "pending"
	}
}

// StatusColor returns the accent color for a task's state.
func StatusColor(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "#10b981"
	case t.Overdue(now):
		return "#ef4444"
	default:
		return "#f59e0b"
	}
}

// Placeholders used wherever an optional field is absent.
const (
	NoDescription = "none"
	NoDueDate     = "unscheduled"
)

// DateLayout is the date-only format used in all report output.
const DateLayout = "2006-01-02"

// FormatDueDate renders a due date, or the placeholder when absent.
func FormatDueDate(t task.Task) string {
	if t.DueDate == nil {
		return NoDueDate
	}
	return t.DueDate.Format(DateLayout)
}
