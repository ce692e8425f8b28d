package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/zakkirni/zakkirni/internal/task"
)

// utf8BOM keeps non-ASCII text intact in spreadsheet consumers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"#", "Title", "Description", "Priority", "Status", "Due Date", "Created"}

func renderCSV(tasks []task.Task, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i, t := range tasks {
		desc := t.Description
		if desc == "" {
			desc = NoDescription
		}
		row := []string{
			strconv.Itoa(i + 1),
			t.Title,
			desc,
			PriorityLabel(t.Priority),
			StatusLabel(t, now),
			FormatDueDate(t),
			t.CreatedAt.Format(DateLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
