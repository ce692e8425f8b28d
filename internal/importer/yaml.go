// Package importer bulk-creates tasks from a YAML document.
package importer

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zakkirni/zakkirni/internal/store"
	"github.com/zakkirni/zakkirni/internal/task"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	Completed   bool   `yaml:"completed,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML string and creates tasks in the store.
// Returns the number of tasks created.
func Import(s *store.Store, yamlStr string) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	count := 0
	for _, yt := range input.Tasks {
		if err := importTask(s, yt); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func importTask(s *store.Store, yt YAMLTask) error {
	priority := task.Priority(yt.Priority)
	if yt.Priority == "" {
		priority = task.PriorityMedium
	}

	var due *time.Time
	if yt.DueDate != "" {
		d, err := time.Parse("2006-01-02", yt.DueDate)
		if err != nil {
			return fmt.Errorf("due date for %q: %w", yt.Title, err)
		}
		due = &d
	}

	t, err := s.Add(yt.Title, yt.Description, priority, due)
	if err != nil {
		return fmt.Errorf("add task %q: %w", yt.Title, err)
	}

	if yt.Completed {
		if err := s.ToggleComplete(t.ID); err != nil {
			return fmt.Errorf("complete task %q: %w", yt.Title, err)
		}
	}
	return nil
}
