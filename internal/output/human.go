package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zakkirni/zakkirni/internal/page"
	"github.com/zakkirni/zakkirni/internal/report"
	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t task.Task, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%d] %s\n", t.ID, t.Title))
	sb.WriteString(fmt.Sprintf("  Status:   %s\n", report.StatusLabel(t, now)))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", report.PriorityLabel(t.Priority)))
	sb.WriteString(fmt.Sprintf("  Due:      %s (%s)\n", report.FormatDueDate(t), t.TimeLeft(now)))
	sb.WriteString(fmt.Sprintf("  Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04")))

	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTaskList formats one page of a view, with a pagination footer.
func (f *HumanFormatter) FormatTaskList(res page.Result, now time.Time) string {
	if len(res.Items) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range res.Items {
		sb.WriteString(f.formatTaskLine(t, now))
	}

	if res.TotalPages > 1 {
		sb.WriteString(faintStyle.Render(fmt.Sprintf(
			"Page %d of %d  [%s]",
			res.Page, res.TotalPages, strings.Join(page.Numbers(res.TotalPages, res.Page), " "),
		)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatTaskLine formats a single task as a compact one-liner.
func (f *HumanFormatter) formatTaskLine(t task.Task, now time.Time) string {
	statusIcon := f.statusIcon(t, now)
	priorityMark := f.priorityMark(t.Priority)
	due := ""
	if t.DueDate != nil {
		due = faintStyle.Render(fmt.Sprintf(" (due %s)", t.DueDate.Format("2006-01-02")))
	}
	return fmt.Sprintf("%s %s [%d] %s%s\n", statusIcon, priorityMark, t.ID, t.Title, due)
}

func (f *HumanFormatter) statusIcon(t task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return completedStyle.Render("[x]")
	case t.Overdue(now):
		return overdueStyle.Render("[!]")
	default:
		return pendingStyle.Render("[ ]")
	}
}

func (f *HumanFormatter) priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// FormatStats formats the statistics dashboard.
func (f *HumanFormatter) FormatStats(s stats.Stats) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Overview") + "\n")
	sb.WriteString(fmt.Sprintf("  Total:     %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Completed: %d (%d%%)\n", s.Completed, s.CompletionPercentage))
	sb.WriteString(fmt.Sprintf("  Pending:   %d (%d%%)\n", s.Pending, s.PendingPercentage))
	sb.WriteString(fmt.Sprintf("  Overdue:   %d (%d%%)\n", s.Overdue, s.OverduePercentage))
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Priorities") + "\n")
	sb.WriteString(fmt.Sprintf("  High:   %d (%d%%)\n", s.HighPriority, s.HighPriorityPercentage))
	sb.WriteString(fmt.Sprintf("  Medium: %d (%d%%)\n", s.MediumPriority, s.MediumPriorityPercentage))
	sb.WriteString(fmt.Sprintf("  Low:    %d (%d%%)\n", s.LowPriority, s.LowPriorityPercentage))
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Schedule") + "\n")
	sb.WriteString(fmt.Sprintf("  Due today:     %d\n", s.DueToday))
	sb.WriteString(fmt.Sprintf("  Due this week: %d\n", s.DueThisWeek))
	sb.WriteString(fmt.Sprintf("  No due date:   %d\n", s.WithoutDueDate))
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Performance") + "\n")
	sb.WriteString(fmt.Sprintf("  Productivity score:   %d/100\n", s.ProductivityScore))
	sb.WriteString(fmt.Sprintf("  Completion streak:    %d\n", s.CompletionStreak))
	sb.WriteString(fmt.Sprintf("  Average tasks/day:    %.1f\n", s.AverageTasksPerDay))
	sb.WriteString(fmt.Sprintf("  Most productive day:  %s\n", s.MostProductiveDay))
	sb.WriteString(fmt.Sprintf("  Estimated completion: %s\n", s.EstimatedCompletion))
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Last 4 weeks") + "\n")
	for _, w := range s.WeeklyTrend {
		sb.WriteString(fmt.Sprintf("  %-12s %d/%d completed\n", w.Label, w.Completed, w.Total))
	}
	sb.WriteString("\n")

	msg := s.MotivationalMessage
	switch s.MotivationalType {
	case stats.MessageWarning:
		msg = overdueStyle.Render(msg)
	case stats.MessageExcellent:
		msg = completedStyle.Render(msg)
	}
	sb.WriteString(msg + "\n")
	for _, sug := range s.Suggestions {
		sb.WriteString(faintStyle.Render("  - "+sug) + "\n")
	}

	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
