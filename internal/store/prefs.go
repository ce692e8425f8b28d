package store

import (
	"encoding/json"
	"fmt"
)

const viewPrefsKey = "view"

// ViewPrefs is the persisted view state: page size, sort key, filter state
// and view mode. It is stored as an opaque JSON blob; the query engine only
// sees the values after they are mapped onto query parameters.
type ViewPrefs struct {
	ViewMode string `json:"view_mode"`
	PageSize int    `json:"page_size"`
	SortBy   string `json:"sort_by"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

// DefaultViewPrefs returns the preferences used before anything was saved.
func DefaultViewPrefs() ViewPrefs {
	return ViewPrefs{
		ViewMode: "list",
		PageSize: 10,
		SortBy:   "created-desc",
		Status:   "all",
		Priority: "all",
		DueDate:  "all",
	}
}

// SaveViewPrefs persists the view preferences.
func (s *Store) SaveViewPrefs(p ViewPrefs) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		viewPrefsKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// LoadViewPrefs returns the saved view preferences, falling back to the
// defaults when nothing was saved yet or the stored blob is unreadable.
func (s *Store) LoadViewPrefs() ViewPrefs {
	var raw string
	if err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", viewPrefsKey).Scan(&raw); err != nil {
		return DefaultViewPrefs()
	}

	p := DefaultViewPrefs()
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return DefaultViewPrefs()
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultViewPrefs().PageSize
	}
	return p
}
