//nolint:testpackage // Tests require internal access for thorough testing
package stats

import (
	"testing"
	"time"

	"github.com/zakkirni/zakkirni/internal/task"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) // a Friday

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestComputeEmptySnapshot(t *testing.T) {
	s := Compute(nil, testNow)

	if s.Total != 0 || s.Completed != 0 || s.Pending != 0 || s.Overdue != 0 {
		t.Errorf("empty snapshot should produce zero counts, got %+v", s)
	}
	if s.CompletionPercentage != 0 || s.ProductivityScore != 0 {
		t.Error("empty snapshot should produce zero percentages")
	}
	if s.AverageTasksPerDay != 0 {
		t.Errorf("AverageTasksPerDay = %v, want 0", s.AverageTasksPerDay)
	}
	if s.EstimatedCompletion != "unspecified" {
		t.Errorf("EstimatedCompletion = %q, want unspecified", s.EstimatedCompletion)
	}
	if s.MotivationalMessage != "Start your productive journey today!" {
		t.Errorf("unexpected motivational message %q", s.MotivationalMessage)
	}
	if s.NeedsAttention {
		t.Error("empty snapshot should not need attention")
	}
	if len(s.WeeklyTrend) != 4 {
		t.Errorf("weekly trend should always have 4 buckets, got %d", len(s.WeeklyTrend))
	}
}

// TestComputeMixedSnapshot walks a five-task snapshot through every counter.
func TestComputeMixedSnapshot(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	created := testNow.AddDate(0, 0, -10)
	tasks := []task.Task{
		{ID: 1, Title: "one", Completed: true, CreatedAt: created},
		{ID: 2, Title: "two", Completed: true, CreatedAt: created},
		{ID: 3, Title: "three", Priority: task.PriorityHigh, DueDate: datePtr(yesterday), CreatedAt: created},
		{ID: 4, Title: "four", Priority: task.PriorityMedium, DueDate: datePtr(testNow), CreatedAt: created},
		{ID: 5, Title: "five", Priority: task.PriorityLow, CreatedAt: created},
	}

	s := Compute(tasks, testNow)

	if s.Total != 5 || s.Completed != 2 || s.Pending != 3 || s.Overdue != 1 {
		t.Errorf("counts = total %d completed %d pending %d overdue %d, want 5/2/3/1",
			s.Total, s.Completed, s.Pending, s.Overdue)
	}
	if s.CompletionPercentage != 40 {
		t.Errorf("CompletionPercentage = %d, want 40", s.CompletionPercentage)
	}
	if s.HighPriority != 1 || s.MediumPriority != 1 || s.LowPriority != 1 {
		t.Errorf("priority counts = %d/%d/%d, want 1/1/1",
			s.HighPriority, s.MediumPriority, s.LowPriority)
	}
	if s.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", s.DueToday)
	}
	if s.WithoutDueDate != 3 {
		t.Errorf("WithoutDueDate = %d, want 3", s.WithoutDueDate)
	}
	// 2/5*100 - 1/5*30 + 0/1*20 = 40 - 6 + 0 = 34
	if s.ProductivityScore != 34 {
		t.Errorf("ProductivityScore = %d, want 34", s.ProductivityScore)
	}
	if !s.NeedsAttention {
		t.Error("overdue task should set NeedsAttention")
	}
	if s.MotivationalType != MessageWarning {
		t.Errorf("MotivationalType = %q, want warning", s.MotivationalType)
	}
}

func TestProductivityScoreBounds(t *testing.T) {
	tests := []struct {
		name                                  string
		total, completed, overdue, high, done int
		want                                  int
	}{
		{"no tasks", 0, 0, 0, 0, 0, 0},
		{"all complete with high bonus", 4, 4, 0, 2, 2, 100},
		{"clamped at zero", 10, 0, 10, 0, 0, 0},
		{"bonus capped at hundred", 2, 2, 0, 2, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productivityScore(tt.total, tt.completed, tt.overdue, tt.high, tt.done)
			if got != tt.want {
				t.Errorf("productivityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAveragePerDay(t *testing.T) {
	tasks := []task.Task{
		{CreatedAt: testNow.AddDate(0, 0, -4)},
		{CreatedAt: testNow.AddDate(0, 0, -2)},
		{CreatedAt: testNow},
	}
	// 3 tasks over ceil(4 days within now's wall clock) = 4 days -> 0.8
	if got := averagePerDay(tasks, testNow); got != 0.8 {
		t.Errorf("averagePerDay = %v, want 0.8", got)
	}

	sameDay := []task.Task{{CreatedAt: testNow}, {CreatedAt: testNow}}
	// Span under one day counts as one day.
	if got := averagePerDay(sameDay, testNow); got != 2.0 {
		t.Errorf("averagePerDay same day = %v, want 2", got)
	}
}

func TestCompletionStreak(t *testing.T) {
	mk := func(daysAgo int, completed bool) task.Task {
		return task.Task{Completed: completed, CreatedAt: testNow.AddDate(0, 0, -daysAgo)}
	}

	tests := []struct {
		name  string
		tasks []task.Task
		want  int
	}{
		{"empty", nil, 0},
		{"newest pending", []task.Task{mk(2, true), mk(1, true), mk(0, false)}, 0},
		{"run of two", []task.Task{mk(2, false), mk(1, true), mk(0, true)}, 2},
		{"all completed", []task.Task{mk(2, true), mk(1, true), mk(0, true)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completionStreak(tt.tasks); got != tt.want {
				t.Errorf("completionStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	// 2024-03-15 is a Friday; its week starts Sunday 2024-03-10.
	got := weekStart(testNow)
	want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("weekStart = %v, want %v", got, want)
	}
	// A Sunday is its own week start.
	sunday := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)
	if !weekStart(sunday).Equal(want) {
		t.Errorf("weekStart(sunday) = %v, want %v", weekStart(sunday), want)
	}
}

func TestWeeklyTrend(t *testing.T) {
	tasks := []task.Task{
		{CreatedAt: testNow, Completed: true},
		{CreatedAt: testNow.AddDate(0, 0, -7)},
		{CreatedAt: testNow.AddDate(0, 0, -14), Completed: true},
		{CreatedAt: testNow.AddDate(0, 0, -40)}, // outside the four-week window
	}

	trend := weeklyTrend(tasks, testNow)
	if len(trend) != 4 {
		t.Fatalf("trend length = %d, want 4", len(trend))
	}
	labels := []string{"3 weeks ago", "2 weeks ago", "last week", "this week"}
	totals := []int{0, 1, 1, 1}
	completed := []int{0, 1, 0, 1}
	for i, b := range trend {
		if b.Label != labels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Label, labels[i])
		}
		if b.Total != totals[i] || b.Completed != completed[i] {
			t.Errorf("bucket %d = %d/%d, want %d/%d", i, b.Completed, b.Total, completed[i], totals[i])
		}
	}
}

func TestMostProductiveDay(t *testing.T) {
	monday := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	tasks := []task.Task{
		{CreatedAt: monday, Completed: true},
		{CreatedAt: monday},
		{CreatedAt: tuesday, Completed: true},
	}
	// Tuesday completes 1/1, Monday only 1/2.
	if got := mostProductiveDay(tasks); got != "Tuesday" {
		t.Errorf("mostProductiveDay = %q, want Tuesday", got)
	}
}

func TestEstimatedCompletion(t *testing.T) {
	tests := []struct {
		name    string
		pending int
		rate    float64
		want    string
	}{
		{"no backlog", 0, 2, "unspecified"},
		{"no pace", 5, 0, "unspecified"},
		{"single day", 2, 2, "1 day"},
		{"days", 6, 2, "3 days"},
		{"one week", 7, 1, "1 week"},
		{"weeks", 20, 1, "3 weeks"},
		{"months", 90, 1, "3 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimatedCompletion(tt.pending, tt.rate); got != tt.want {
				t.Errorf("estimatedCompletion(%d, %v) = %q, want %q", tt.pending, tt.rate, got, tt.want)
			}
		})
	}
}

func TestMotivationalBands(t *testing.T) {
	tests := []struct {
		name     string
		overdue  int
		rate     int
		wantType MessageType
	}{
		{"overdue overrides rate", 1, 100, MessageWarning},
		{"perfect", 0, 100, MessageExcellent},
		{"eighty", 0, 80, MessageExcellent},
		{"sixty", 0, 60, MessageGood},
		{"forty", 0, 40, MessageGood},
		{"twenty", 0, 20, MessageStart},
		{"zero", 0, 0, MessageStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := motivationalType(tt.overdue, tt.rate); got != tt.wantType {
				t.Errorf("motivationalType(%d, %d) = %q, want %q", tt.overdue, tt.rate, got, tt.wantType)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	healthy := Stats{Total: 10, CompletionPercentage: 90}
	got := suggestions(healthy)
	if len(got) != 1 || got[0] != "You're doing great, keep up this level!" {
		t.Errorf("healthy stats should get the single praise suggestion, got %v", got)
	}

	troubled := Stats{
		Total:                10,
		CompletionPercentage: 10,
		Overdue:              2,
		HighPriority:         6,
		WithoutDueDate:       5,
	}
	if got := suggestions(troubled); len(got) != 4 {
		t.Errorf("troubled stats should trigger all four suggestions, got %v", got)
	}
}

func TestProductivityForPeriod(t *testing.T) {
	tasks := []task.Task{
		{CreatedAt: testNow.AddDate(0, 0, -1), Completed: true},
		{CreatedAt: testNow.AddDate(0, 0, -3)},
		{CreatedAt: testNow.AddDate(0, 0, -30), Completed: true}, // outside window
	}
	if got := ProductivityForPeriod(tasks, 7, testNow); got != 50 {
		t.Errorf("ProductivityForPeriod = %d, want 50", got)
	}
	if got := ProductivityForPeriod(nil, 7, testNow); got != 0 {
		t.Errorf("ProductivityForPeriod(empty) = %d, want 0", got)
	}
}

func TestDailyTipIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC)
	if DailyTip(morning) != DailyTip(evening) {
		t.Error("tip should not change during the day")
	}
	nextDay := morning.AddDate(0, 0, 1)
	if DailyTip(morning) == DailyTip(nextDay) {
		t.Error("tip should rotate on consecutive days")
	}
}

func TestDailyTipRotation(t *testing.T) {
	// Day of year indexes the table unadjusted.
	jan1 := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := DailyTip(jan1); got != dailyTips[1] {
		t.Errorf("DailyTip(Jan 1) = %q, want %q", got, dailyTips[1])
	}
	jan8 := time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC)
	if got := DailyTip(jan8); got != dailyTips[0] {
		t.Errorf("DailyTip(Jan 8) = %q, want %q", got, dailyTips[0])
	}
}
