//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// TaskNotFoundError indicates the task ID doesn't match any stored task.
type TaskNotFoundError struct {
	ID int64
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: high, medium, low)", e.Value)
}

// InvalidDateError indicates a date flag that could not be parsed.
type InvalidDateError struct {
	Value string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s (expected YYYY-MM-DD)", e.Value)
}

// ExportError indicates a report could not be generated or written.
type ExportError struct {
	Format string
	Err    error
}

func (e ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Format, e.Err)
}

func (e ExportError) Unwrap() error {
	return e.Err
}

// NothingToExportError indicates an export was requested with no tasks in view.
type NothingToExportError struct{}

func (e NothingToExportError) Error() string {
	return "no tasks to export"
}
