package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

const (
	textRule    = "======================================="
	textSubRule = "---------------------------------------"
)

// renderText produces the fixed-layout plain text report: header, summary
// block, then one multi-line entry per task in view order.
func renderText(tasks []task.Task, s stats.Stats, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("TASK REPORT\n")
	sb.WriteString(textRule + "\n\n")
	sb.WriteString(fmt.Sprintf("Report date: %s\n\n", now.Format(DateLayout)))

	sb.WriteString("Summary\n")
	sb.WriteString(textSubRule + "\n")
	sb.WriteString(fmt.Sprintf("  Total tasks:     %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Completed:       %d\n", s.Completed))
	sb.WriteString(fmt.Sprintf("  Pending:         %d\n", s.Pending))
	sb.WriteString(fmt.Sprintf("  Overdue:         %d\n", s.Overdue))
	sb.WriteString(fmt.Sprintf("  Completion rate: %d%%\n", s.CompletionPercentage))
	sb.WriteString(fmt.Sprintf("  Productivity:    %d/100\n", s.ProductivityScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Tasks (%d)\n", len(tasks)))
	sb.WriteString(textRule + "\n\n")

	for i, t := range tasks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Title))
		if t.Description != "" {
			sb.WriteString(fmt.Sprintf("   Description: %s\n", t.Description))
		}
		sb.WriteString(fmt.Sprintf("   Status: %s | Priority: %s | Due: %s\n",
			StatusLabel(t, now), PriorityLabel(t.Priority), FormatDueDate(t)))
		sb.WriteString(fmt.Sprintf("   Created: %s\n", t.CreatedAt.Format(DateLayout)))
		sb.WriteString("   " + textSubRule + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("Generated by zakkirni at %s\n", now.Format("2006-01-02 15:04")))
	return sb.String()
}
