package task

import (
	"fmt"
	"strings"
	"time"
)

// MinTitleLength is the shortest title accepted at creation.
const MinTitleLength = 3

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank returns the sort rank for a priority (higher = more important).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Task represents a tracked work item.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time // date-only; time of day is ignored everywhere
	Completed   bool
	CreatedAt   time.Time
}

// ValidateTitle reports whether a title is acceptable for a new task.
// Surrounding whitespace does not count toward the minimum length.
func ValidateTitle(title string) error {
	if len([]rune(strings.TrimSpace(title))) < MinTitleLength {
		return TitleTooShortError{Title: title}
	}
	return nil
}

// TitleTooShortError indicates a title under the minimum length.
type TitleTooShortError struct {
	Title string
}

func (e TitleTooShortError) Error() string {
	return fmt.Sprintf("title %q is too short (minimum %d characters)", e.Title, MinTitleLength)
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Overdue reports whether the task's due date is strictly before today.
// Tasks without a due date, or already completed, are never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return Midnight(*t.DueDate).Before(Midnight(now))
}

// DueToday reports whether the task is due on the current calendar day.
func (t Task) DueToday(now time.Time) bool {
	return t.DueDate != nil && SameDay(*t.DueDate, now)
}

// DueTomorrow reports whether the task is due on the next calendar day.
func (t Task) DueTomorrow(now time.Time) bool {
	return t.DueDate != nil && SameDay(*t.DueDate, now.AddDate(0, 0, 1))
}

// DueWithinWeek reports whether the due date falls in [today, today+7d] inclusive.
func (t Task) DueWithinWeek(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	due := Midnight(*t.DueDate)
	today := Midnight(now)
	return !due.Before(today) && !due.After(today.AddDate(0, 0, 7))
}

// TimeLeft describes how far the due date is from now, in days or weeks.
func (t Task) TimeLeft(now time.Time) string {
	if t.Completed {
		return "completed"
	}
	if t.DueDate == nil {
		return "no due date"
	}
	days := int(Midnight(*t.DueDate).Sub(Midnight(now)).Hours() / 24)
	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days <= 7:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("in %d weeks", (days+6)/7)
	}
}
