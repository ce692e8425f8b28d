package output

import (
	"time"

	"github.com/zakkirni/zakkirni/internal/page"
	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t task.Task, now time.Time) string
	FormatTaskList(res page.Result, now time.Time) string
	FormatStats(s stats.Stats) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
