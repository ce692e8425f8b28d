package output

import (
	"encoding/json"
	"time"

	"github.com/zakkirni/zakkirni/internal/page"
	"github.com/zakkirni/zakkirni/internal/report"
	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// taskJSON is the JSON representation of a task.
type taskJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

func toTaskJSON(t task.Task, now time.Time) taskJSON {
	tj := taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      report.StatusLabel(t, now),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		tj.DueDate = t.DueDate.Format("2006-01-02")
	}
	return tj
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t task.Task, now time.Time) string {
	return marshalJSON(toTaskJSON(t, now))
}

// taskListJSON is the JSON representation of one page of a view.
type taskListJSON struct {
	Tasks      []taskJSON `json:"tasks"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

// FormatTaskList formats one page of a view as JSON.
func (f *JSONFormatter) FormatTaskList(res page.Result, now time.Time) string {
	out := taskListJSON{
		Tasks:      make([]taskJSON, len(res.Items)),
		Page:       res.Page,
		TotalPages: res.TotalPages,
	}
	for i, t := range res.Items {
		out.Tasks[i] = toTaskJSON(t, now)
	}
	return marshalJSON(out)
}

// FormatStats formats the statistics as JSON.
func (f *JSONFormatter) FormatStats(s stats.Stats) string {
	return marshalJSON(s)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
