// Package report renders a (tasks, stats) pair into exportable documents.
// The generator performs no I/O; callers decide where the bytes go.
package report

import (
	"fmt"
	"time"

	zerrors "github.com/zakkirni/zakkirni/internal/errors"
	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

// Format names an output document format.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// IsValidFormat checks if a format string is valid.
func IsValidFormat(f Format) bool {
	switch f {
	case FormatText, FormatCSV, FormatHTML:
		return true
	default:
		return false
	}
}

// Document is a rendered report payload.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Render produces a document in the given format from an already filtered
// and sorted task view plus its statistics.
func Render(tasks []task.Task, s stats.Stats, f Format, now time.Time) (Document, error) {
	switch f {
	case FormatText:
		return Document{
			Filename:    reportFilename("txt", now),
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(renderText(tasks, s, now)),
		}, nil
	case FormatCSV:
		data, err := renderCSV(tasks, now)
		if err != nil {
			return Document{}, zerrors.ExportError{Format: string(f), Err: err}
		}
		return Document{
			Filename:    reportFilename("csv", now),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case FormatHTML:
		data, err := renderHTML(tasks, s, now)
		if err != nil {
			return Document{}, zerrors.ExportError{Format: string(f), Err: err}
		}
		return Document{
			Filename:    reportFilename("html", now),
			ContentType: "text/html; charset=utf-8",
			Data:        data,
		}, nil
	default:
		return Document{}, zerrors.ExportError{
			Format: string(f),
			Err:    fmt.Errorf("unknown format %q", string(f)),
		}
	}
}

func reportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("tasks_report_%s.%s", now.Format(DateLayout), ext)
}
