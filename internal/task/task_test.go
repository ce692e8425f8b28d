//nolint:testpackage // Tests require internal access for thorough testing
package task

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestIsValidPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{Priority("invalid"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := IsValidPriority(tt.priority); got != tt.valid {
				t.Errorf("IsValidPriority(%q) = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityRank(PriorityHigh) <= PriorityRank(PriorityMedium) {
		t.Error("high should rank above medium")
	}
	if PriorityRank(PriorityMedium) <= PriorityRank(PriorityLow) {
		t.Error("medium should rank above low")
	}
	if PriorityRank(Priority("invalid")) != 0 {
		t.Error("unknown priority should rank 0")
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Buy groceries", false},
		{"exactly minimum", "abc", false},
		{"too short", "ab", true},
		{"whitespace only", "   ", true},
		{"tabs and newlines", "\t\n\t", true},
		{"padded but long enough", "  abc  ", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestOverdue(t *testing.T) {
	now := date(2024, time.March, 15)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past due and pending", Task{DueDate: datePtr(2024, time.March, 10)}, true},
		{"past due but completed", Task{DueDate: datePtr(2024, time.March, 10), Completed: true}, false},
		{"due today", Task{DueDate: datePtr(2024, time.March, 15)}, false},
		{"due tomorrow", Task{DueDate: datePtr(2024, time.March, 16)}, false},
		{"no due date", Task{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Overdue(now); got != tt.want {
				t.Errorf("Overdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverdueIgnoresTimeOfDay(t *testing.T) {
	// A task due today is not overdue no matter the wall clock.
	now := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	tk := Task{DueDate: datePtr(2024, time.March, 15)}
	if tk.Overdue(now) {
		t.Error("task due today should not be overdue at 23:59")
	}
}

func TestDueBuckets(t *testing.T) {
	now := date(2024, time.March, 15)

	today := Task{DueDate: datePtr(2024, time.March, 15)}
	tomorrow := Task{DueDate: datePtr(2024, time.March, 16)}
	weekEdge := Task{DueDate: datePtr(2024, time.March, 22)}
	beyond := Task{DueDate: datePtr(2024, time.March, 23)}
	undated := Task{}

	if !today.DueToday(now) || tomorrow.DueToday(now) {
		t.Error("DueToday should match only the current day")
	}
	if !tomorrow.DueTomorrow(now) || today.DueTomorrow(now) {
		t.Error("DueTomorrow should match only the next day")
	}
	if !today.DueWithinWeek(now) || !weekEdge.DueWithinWeek(now) {
		t.Error("DueWithinWeek should include today through day seven")
	}
	if beyond.DueWithinWeek(now) {
		t.Error("DueWithinWeek should exclude day eight")
	}
	if undated.DueToday(now) || undated.DueWithinWeek(now) {
		t.Error("undated tasks belong to no due bucket")
	}
}

func TestTimeLeft(t *testing.T) {
	now := date(2024, time.March, 15)

	tests := []struct {
		name string
		task Task
		want string
	}{
		{"completed", Task{Completed: true}, "completed"},
		{"no due date", Task{}, "no due date"},
		{"overdue", Task{DueDate: datePtr(2024, time.March, 12)}, "overdue by 3 days"},
		{"today", Task{DueDate: datePtr(2024, time.March, 15)}, "today"},
		{"tomorrow", Task{DueDate: datePtr(2024, time.March, 16)}, "tomorrow"},
		{"in days", Task{DueDate: datePtr(2024, time.March, 20)}, "in 5 days"},
		{"in weeks", Task{DueDate: datePtr(2024, time.March, 30)}, "in 3 weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.TimeLeft(now); got != tt.want {
				t.Errorf("TimeLeft() = %q, want %q", got, tt.want)
			}
		})
	}
}
