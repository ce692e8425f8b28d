//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestTaskNotFoundError(t *testing.T) {
	err := TaskNotFoundError{ID: 42}
	want := "task not found: 42"
	if got := err.Error(); got != want {
		t.Errorf("TaskNotFoundError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidPriorityError(t *testing.T) {
	err := InvalidPriorityError{Value: "urgent"}
	want := "invalid priority: urgent (valid: high, medium, low)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidPriorityError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidDateError(t *testing.T) {
	err := InvalidDateError{Value: "tomorrow"}
	want := "invalid date: tomorrow (expected YYYY-MM-DD)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidDateError.Error() = %q, want %q", got, want)
	}
}

func TestExportError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := ExportError{Format: "csv", Err: cause}
	want := "export to csv failed: disk full"
	if got := err.Error(); got != want {
		t.Errorf("ExportError.Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("ExportError should unwrap to its cause")
	}
}

func TestNothingToExportError(t *testing.T) {
	err := NothingToExportError{}
	want := "no tasks to export"
	if got := err.Error(); got != want {
		t.Errorf("NothingToExportError.Error() = %q, want %q", got, want)
	}
}
