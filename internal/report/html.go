package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/zakkirni/zakkirni/internal/stats"
	"github.com/zakkirni/zakkirni/internal/task"
)

// The document is fully self-contained: every style needed for correct
// rendering and printing is embedded. The imported web font is cosmetic.
const htmlReport = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Task Report</title>
  <style>
    @import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap');

    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
      font-family: 'Inter', 'Segoe UI', sans-serif;
      color: #2d3748;
      line-height: 1.6;
      background: #f1f5f9;
      padding: 20px;
    }

    .container {
      max-width: 800px;
      margin: 0 auto;
      background: white;
      border-radius: 12px;
      overflow: hidden;
      box-shadow: 0 10px 30px rgba(0,0,0,0.08);
    }

    .header {
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: white;
      padding: 40px 30px;
      text-align: center;
    }

    .header h1 { font-size: 2rem; font-weight: 700; margin-bottom: 8px; }

    .content { padding: 30px; }

    .stats-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
      gap: 15px;
      margin-bottom: 25px;
    }

    .stat-card {
      color: white;
      padding: 20px;
      border-radius: 10px;
      text-align: center;
    }

    .stat-card.total { background: #3182ce; }
    .stat-card.completed { background: #10b981; }
    .stat-card.pending { background: #f59e0b; }
    .stat-card.overdue { background: #ef4444; }

    .stat-number { font-size: 2rem; font-weight: 700; }
    .stat-label { font-size: 0.85rem; opacity: 0.9; }

    .completion-rate {
      background: #f7fafc;
      padding: 20px;
      border-radius: 10px;
      text-align: center;
      margin-bottom: 30px;
    }

    .progress-bar {
      background: #e2e8f0;
      height: 12px;
      border-radius: 25px;
      overflow: hidden;
      margin: 10px 0;
    }

    .progress-fill {
      height: 100%;
      background: linear-gradient(90deg, #667eea, #764ba2);
      border-radius: 25px;
    }

    .tasks h2 {
      font-size: 1.4rem;
      margin-bottom: 18px;
      border-bottom: 2px solid #e2e8f0;
      padding-bottom: 8px;
    }

    .task-item {
      background: #f8fafc;
      border: 1px solid #e2e8f0;
      border-radius: 10px;
      padding: 18px;
      margin-bottom: 12px;
      border-left: 5px solid var(--accent);
    }

    .task-item.completed { --accent: #10b981; }
    .task-item.pending { --accent: #f59e0b; }
    .task-item.overdue { --accent: #ef4444; }

    .task-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 8px;
    }

    .task-title { font-size: 1.05rem; font-weight: 600; }
    .task-title.done { text-decoration: line-through; opacity: 0.7; }

    .task-status {
      background: var(--accent);
      color: white;
      padding: 4px 12px;
      border-radius: 20px;
      font-size: 0.75rem;
      font-weight: 600;
      white-space: nowrap;
    }

    .task-description { color: #718096; font-size: 0.9rem; margin-bottom: 8px; }

    .task-meta { display: flex; gap: 18px; font-size: 0.8rem; color: #a0aec0; flex-wrap: wrap; }

    .footer {
      background: #f7fafc;
      padding: 24px;
      text-align: center;
      color: #718096;
      font-size: 0.85rem;
      border-top: 1px solid #e2e8f0;
    }

    @media print {
      body { background: white; padding: 0; }
      .container { box-shadow: none; border-radius: 0; }
      .task-item { page-break-inside: avoid; }
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Task Report</h1>
      <p>{{.Date}}</p>
    </div>
    <div class="content">
      <div class="stats-grid">
        <div class="stat-card total">
          <div class="stat-number">{{.Stats.Total}}</div>
          <div class="stat-label">Total tasks</div>
        </div>
        <div class="stat-card completed">
          <div class="stat-number">{{.Stats.Completed}}</div>
          <div class="stat-label">Completed</div>
        </div>
        <div class="stat-card pending">
          <div class="stat-number">{{.Stats.Pending}}</div>
          <div class="stat-label">Pending</div>
        </div>
        <div class="stat-card overdue">
          <div class="stat-number">{{.Stats.Overdue}}</div>
          <div class="stat-label">Overdue</div>
        </div>
      </div>
      <div class="completion-rate">
        <h3>Completion rate</h3>
        <div class="progress-bar">
          <div class="progress-fill" style="width: {{.Stats.CompletionPercentage}}%;"></div>
        </div>
        <strong>{{.Stats.CompletionPercentage}}%</strong>
      </div>
      <div class="tasks">
        <h2>Tasks ({{len .Tasks}})</h2>
        {{range .Tasks}}
        <div class="task-item {{.StatusClass}}">
          <div class="task-header">
            <div class="task-title{{if .Completed}} done{{end}}">{{.Index}}. {{.Title}}</div>
            <div class="task-status">{{.Status}}</div>
          </div>
          {{if .Description}}<div class="task-description">{{.Description}}</div>{{end}}
          <div class="task-meta">
            <span style="color: {{.PriorityColor}}; font-weight: 600;">{{.Priority}} priority</span>
            <span>Due: {{.Due}}</span>
            <span>Created: {{.Created}}</span>
          </div>
        </div>
        {{end}}
      </div>
    </div>
    <div class="footer">
      <p><strong>Generated by zakkirni</strong></p>
      <p>{{len .Tasks}} tasks &bull; {{.GeneratedAt}}</p>
    </div>
  </div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlReport))

type htmlTask struct {
	Index         int
	Title         string
	Description   string
	Status        string
	StatusClass   string
	Priority      string
	PriorityColor template.CSS
	Due           string
	Created       string
	Completed     bool
}

type htmlData struct {
	Date        string
	GeneratedAt string
	Stats       stats.Stats
	Tasks       []htmlTask
}

func renderHTML(tasks []task.Task, s stats.Stats, now time.Time) ([]byte, error) {
	data := htmlData{
		Date:        now.Format("Monday, January 2, 2006"),
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Stats:       s,
		Tasks:       make([]htmlTask, 0, len(tasks)),
	}
	for i, t := range tasks {
		data.Tasks = append(data.Tasks, htmlTask{
			Index:         i + 1,
			Title:         t.Title,
			Description:   t.Description,
			Status:        StatusLabel(t, now),
			StatusClass:   StatusClass(t, now),
			Priority:      PriorityLabel(t.Priority),
			PriorityColor: template.CSS(PriorityColor(t.Priority)),
			Due:           FormatDueDate(t),
			Created:       t.CreatedAt.Format(DateLayout),
			Completed:     t.Completed,
		})
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
