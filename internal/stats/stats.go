// Package stats computes aggregate metrics over a task snapshot.
// Every function is pure and total: empty snapshots produce zeros and
// sentinel strings, never NaN or a panic.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/zakkirni/zakkirni/internal/task"
)

// MessageType classifies the motivational message for presentation.
type MessageType string

const (
	MessageExcellent MessageType = "excellent"
	MessageGood      MessageType = "good"
	MessageStart     MessageType = "start"
	MessageWarning   MessageType = "warning"
)

// WeekBucket is one week of the rolling trend window.
type WeekBucket struct {
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// Stats holds every derived metric for a snapshot.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"` // not completed; overdue tasks are a subset
	Overdue   int `json:"overdue"`

	CompletionPercentage int `json:"completion_percentage"`
	PendingPercentage    int `json:"pending_percentage"`
	OverduePercentage    int `json:"overdue_percentage"`

	HighPriority             int `json:"high_priority"`
	MediumPriority           int `json:"medium_priority"`
	LowPriority              int `json:"low_priority"`
	HighPriorityPercentage   int `json:"high_priority_percentage"`
	MediumPriorityPercentage int `json:"medium_priority_percentage"`
	LowPriorityPercentage    int `json:"low_priority_percentage"`

	DueToday       int `json:"due_today"`
	DueThisWeek    int `json:"due_this_week"` // Sunday-to-Saturday week containing today
	WithoutDueDate int `json:"without_due_date"`

	ProductivityScore  int     `json:"productivity_score"`
	AverageTasksPerDay float64 `json:"average_tasks_per_day"`
	CompletionStreak   int     `json:"completion_streak"`

	WeeklyTrend         []WeekBucket `json:"weekly_trend"`
	MostProductiveDay   string       `json:"most_productive_day"`
	EstimatedCompletion string       `json:"estimated_completion"`
	MotivationalMessage string       `json:"motivational_message"`
	MotivationalType    MessageType  `json:"motivational_type"`
	Suggestions         []string     `json:"suggestions"`
	NeedsAttention      bool         `json:"needs_attention"`
}

// Compute derives all metrics from the snapshot. The snapshot is read only.
func Compute(tasks []task.Task, now time.Time) Stats {
	var s Stats
	s.Total = len(tasks)

	var completedHigh int
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.Overdue(now) {
			s.Overdue++
		}
		switch t.Priority {
		case task.PriorityHigh:
			s.HighPriority++
			if t.Completed {
				completedHigh++
			}
		case task.PriorityMedium:
			s.MediumPriority++
		case task.PriorityLow:
			s.LowPriority++
		}
		if t.DueDate == nil {
			s.WithoutDueDate++
		} else {
			if t.DueToday(now) {
				s.DueToday++
			}
			if inCurrentWeek(*t.DueDate, now) {
				s.DueThisWeek++
			}
		}
	}
	s.Pending = s.Total - s.Completed

	s.CompletionPercentage = percent(s.Completed, s.Total)
	s.PendingPercentage = percent(s.Pending, s.Total)
	s.OverduePercentage = percent(s.Overdue, s.Total)
	s.HighPriorityPercentage = percent(s.HighPriority, s.Total)
	s.MediumPriorityPercentage = percent(s.MediumPriority, s.Total)
	s.LowPriorityPercentage = percent(s.LowPriority, s.Total)

	s.ProductivityScore = productivityScore(s.Total, s.Completed, s.Overdue, s.HighPriority, completedHigh)
	s.AverageTasksPerDay = averagePerDay(tasks, now)
	s.CompletionStreak = completionStreak(tasks)
	s.WeeklyTrend = weeklyTrend(tasks, now)
	s.MostProductiveDay = mostProductiveDay(tasks)
	s.EstimatedCompletion = estimatedCompletion(s.Pending, s.AverageTasksPerDay)
	s.MotivationalMessage = motivationalMessage(s.Total, s.Overdue, s.CompletionPercentage)
	s.MotivationalType = motivationalType(s.Overdue, s.CompletionPercentage)
	s.Suggestions = suggestions(s)
	s.NeedsAttention = s.Overdue > 0 || s.HighPriority > 0

	return s
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// productivityScore combines completion rate, an overdue penalty, and a
// high-priority completion bonus into a 0-100 score.
func productivityScore(total, completed, overdue, high, completedHigh int) int {
	if total == 0 {
		return 0
	}
	score := float64(completed) / float64(total) * 100
	score -= float64(overdue) / float64(total) * 30
	score += float64(completedHigh) / math.Max(float64(high), 1) * 20
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func averagePerDay(tasks []task.Task, now time.Time) float64 {
	if len(tasks) == 0 {
		return 0
	}
	oldest := tasks[0].CreatedAt
	for _, t := range tasks[1:] {
		if t.CreatedAt.Before(oldest) {
			oldest = t.CreatedAt
		}
	}
	days := math.Max(1, math.Ceil(now.Sub(oldest).Hours()/24))
	return math.Round(float64(len(tasks))/days*10) / 10
}

// completionStreak counts the run of completed tasks at the head of the
// snapshot ordered newest-created first.
func completionStreak(tasks []task.Task) int {
	ordered := make([]task.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	streak := 0
	for _, t := range ordered {
		if !t.Completed {
			break
		}
		streak++
	}
	return streak
}

// weekStart returns the Sunday beginning the week containing t.
func weekStart(t time.Time) time.Time {
	return task.Midnight(t).AddDate(0, 0, -int(t.Weekday()))
}

func inCurrentWeek(due time.Time, now time.Time) bool {
	start := weekStart(now)
	end := start.AddDate(0, 0, 7)
	d := task.Midnight(due)
	return !d.Before(start) && d.Before(end)
}

// weeklyTrend buckets tasks by creation week over the last four calendar
// weeks, oldest first.
func weeklyTrend(tasks []task.Task, now time.Time) []WeekBucket {
	buckets := make([]WeekBucket, 0, 4)
	for i := 3; i >= 0; i-- {
		start := weekStart(now).AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 7)

		var b WeekBucket
		switch i {
		case 0:
			b.Label = "this week"
		case 1:
			b.Label = "last week"
		default:
			b.Label = fmt.Sprintf("%d weeks ago", i)
		}
		for _, t := range tasks {
			created := task.Midnight(t.CreatedAt)
			if created.Before(start) || !created.Before(end) {
				continue
			}
			b.Total++
			if t.Completed {
				b.Completed++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// mostProductiveDay picks the weekday with the best completion ratio
// among creation days. Ties resolve to the earliest weekday.
func mostProductiveDay(tasks []task.Task) string {
	var total, completed [7]int
	for _, t := range tasks {
		d := int(t.CreatedAt.Weekday())
		total[d]++
		if t.Completed {
			completed[d]++
		}
	}
	best := 0
	bestRatio := 0.0
	for d := 0; d < 7; d++ {
		if total[d] == 0 {
			continue
		}
		ratio := float64(completed[d]) / float64(total[d])
		if ratio > bestRatio {
			bestRatio = ratio
			best = d
		}
	}
	return time.Weekday(best).String()
}

// estimatedCompletion projects how long the pending backlog will take at
// the current pace.
func estimatedCompletion(pending int, averagePerDay float64) string {
	if pending == 0 || averagePerDay == 0 {
		return "unspecified"
	}
	days := int(math.Ceil(float64(pending) / averagePerDay))
	switch {
	case days == 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		weeks := (days + 6) / 7
		if weeks == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", weeks)
	default:
		months := (days + 29) / 30
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	}
}

func motivationalMessage(total, overdue, rate int) string {
	if total == 0 {
		return "Start your productive journey today!"
	}
	if overdue > 0 {
		return fmt.Sprintf("You have %d overdue tasks, time to get to work!", overdue)
	}
	switch {
	case rate == 100:
		return "Amazing! You completed all your tasks!"
	case rate >= 80:
		return "Excellent work! You're almost done!"
	case rate >= 60:
		return "Well done! Keep up the progress!"
	case rate >= 40:
		return "Good start, keep going!"
	case rate >= 20:
		return "You're on the right track!"
	case rate > 0:
		return "Great beginning, keep it up!"
	default:
		return "Time to start checking off tasks!"
	}
}

func motivationalType(overdue, rate int) MessageType {
	switch {
	case overdue > 0:
		return MessageWarning
	case rate >= 80:
		return MessageExcellent
	case rate >= 40:
		return MessageGood
	default:
		return MessageStart
	}
}

func suggestions(s Stats) []string {
	var out []string
	if s.CompletionPercentage < 30 {
		out = append(out, "Start with the small tasks first to build momentum")
	}
	if s.Overdue > 0 {
		out = append(out, "Prioritize overdue tasks before they pile up")
	}
	if s.HighPriority > 5 {
		out = append(out, "Break high priority tasks into smaller pieces")
	}
	if float64(s.WithoutDueDate) > float64(s.Total)*0.3 {
		out = append(out, "Set due dates on tasks to stay organized")
	}
	if len(out) == 0 {
		out = append(out, "You're doing great, keep up this level!")
	}
	return out
}

// ProductivityForPeriod is the completion rate of tasks created within the
// last given number of days.
func ProductivityForPeriod(tasks []task.Task, days int, now time.Time) int {
	start := now.AddDate(0, 0, -days)
	var total, completed int
	for _, t := range tasks {
		if t.CreatedAt.Before(start) || t.CreatedAt.After(now) {
			continue
		}
		total++
		if t.Completed {
			completed++
		}
	}
	return percent(completed, total)
}

// dailyTips rotate by day of year so the tip is stable within a day.
var dailyTips = []string{
	"Split big tasks into small actionable steps",
	"Start with the hardest task while your energy is highest",
	"Take a short break every 25 minutes to keep your focus",
	"Rank your work by urgency and importance",
	"Write tomorrow's tasks the evening before",
	"Two-minute rule: if it takes under two minutes, do it now",
	"Pick only three key tasks per day to avoid scattering",
	"Celebrate small wins to keep your motivation up",
}

// DailyTip returns the tip for the current calendar day. The day of year
// indexes the table unadjusted, so January 1 selects the second entry.
func DailyTip(now time.Time) string {
	return dailyTips[now.YearDay()%len(dailyTips)]
}
