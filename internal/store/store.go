// Package store owns the canonical task collection, persisted in SQLite.
// The engine packages only ever see value snapshots taken from here.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	zerrors "github.com/zakkirni/zakkirni/internal/errors"
	"github.com/zakkirni/zakkirni/internal/task"
)

const (
	createdAtLayout = "2006-01-02 15:04:05"
	dueDateLayout   = "2006-01-02"
)

// Store manages SQLite persistence for tasks and view preferences.
type Store struct {
	db *sql.DB
}

func defaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(dataHome, "zakkirni")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "zakkirni.db"), nil
}

// Open opens (or creates) the SQLite database and ensures the schema exists.
// An empty path selects the default location under XDG_DATA_HOME.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("determine db path: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		priority    TEXT    NOT NULL DEFAULT 'medium',
		due_date    TEXT,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT    NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	prefs := `CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(prefs); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs schema: %w", err)
	}

	if err := migrateDescription(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate description: %w", err)
	}

	return &Store{db: db}, nil
}

// migrateDescription backfills the description column on databases created
// before it existed.
func migrateDescription(db *sql.DB) error {
	has, err := columnExists(db, "tasks", "description")
	if err != nil {
		return err
	}
	if !has {
		_, err = db.Exec("ALTER TABLE tasks ADD COLUMN description TEXT NOT NULL DEFAULT ''")
	}
	return err
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dfltValue sql.NullString
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func scanTask(scanner interface{ Scan(...any) error }) (task.Task, error) {
	var t task.Task
	var comp int
	var createdStr string
	var dueDate sql.NullString
	if err := scanner.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &dueDate, &comp, &createdStr); err != nil {
		return task.Task{}, err
	}
	t.Completed = comp != 0
	t.CreatedAt, _ = time.Parse(createdAtLayout, createdStr)
	if dueDate.Valid {
		// Unparsable stored dates are treated as absent so reporting
		// stays usable on a corrupted database.
		if d, err := time.Parse(dueDateLayout, dueDate.String); err == nil {
			t.DueDate = &d
		}
	}
	return t, nil
}

const taskColumns = "id, title, description, priority, due_date, completed, created_at"

// Add validates and inserts a new task, assigning its ID and creation time.
func (s *Store) Add(title, description string, priority task.Priority, due *time.Time) (task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		return task.Task{}, err
	}
	if priority == "" {
		priority = task.PriorityMedium
	}
	if !task.IsValidPriority(priority) {
		return task.Task{}, zerrors.InvalidPriorityError{Value: string(priority)}
	}

	var dueStr any
	if due != nil {
		dueStr = due.Format(dueDateLayout)
	}
	res, err := s.db.Exec(
		"INSERT INTO tasks (title, description, priority, due_date) VALUES (?, ?, ?, ?)",
		title, description, string(priority), dueStr,
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.Get(id)
}

// Snapshot returns all tasks ordered by creation, oldest first.
func (s *Store) Snapshot() ([]task.Task, error) {
	rows, err := s.db.Query("SELECT " + taskColumns + " FROM tasks ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Get retrieves a single task by its ID.
func (s *Store) Get(id int64) (task.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return task.Task{}, zerrors.TaskNotFoundError{ID: id}
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// Update replaces a task's mutable fields. The creation time is never touched.
func (s *Store) Update(t task.Task) error {
	if err := task.ValidateTitle(t.Title); err != nil {
		return err
	}
	if !task.IsValidPriority(t.Priority) {
		return zerrors.InvalidPriorityError{Value: string(t.Priority)}
	}

	var dueStr any
	if t.DueDate != nil {
		dueStr = t.DueDate.Format(dueDateLayout)
	}
	res, err := s.db.Exec(
		"UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?, completed = ? WHERE id = ?",
		t.Title, t.Description, string(t.Priority), dueStr, boolToInt(t.Completed), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return requireRow(res, t.ID)
}

// ToggleComplete atomically flips the completed status of a task.
func (s *Store) ToggleComplete(id int64) error {
	res, err := s.db.Exec("UPDATE tasks SET completed = 1 - completed WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("toggle task %d: %w", id, err)
	}
	return requireRow(res, id)
}

// Delete removes a task by ID.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return zerrors.TaskNotFoundError{ID: id}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
