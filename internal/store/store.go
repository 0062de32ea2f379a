package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/muurk/tickbox/internal/logging"
	"github.com/muurk/tickbox/internal/todo"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var (
	// ErrNotFound is returned when no todo has the requested id
	ErrNotFound = errors.New("todo not found")
	// ErrEmptyTitle is returned when creating a todo without a title
	ErrEmptyTitle = errors.New("todo title must not be empty")
)

// Store is a SQLite backed todo repository.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and brings its
// schema up to date.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// ":memory:" databases live and die with their connection
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to configure database: %w", err)
		}
	}

	s := &Store{db: db, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logging.Debug("Database opened", zap.String("path", path))
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new todo and returns its id
func (s *Store) Create(ctx context.Context, c todo.Create) (int64, error) {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return 0, ErrEmptyTitle
	}

	const query = "INSERT INTO todos (title, completed, created_at) VALUES (?, ?, ?)"
	res, err := s.db.ExecContext(ctx, query, title, false, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to insert todo: %w", err)
	}
	logging.LogQuery(query, 1)

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new todo id: %w", err)
	}
	return id, nil
}

// FindAll returns every todo ordered by id
func (s *Store) FindAll(ctx context.Context) ([]todo.Todo, error) {
	const query = "SELECT id, title, completed, created_at FROM todos ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	logging.LogQuery(query, int64(len(todos)))
	return todos, nil
}

// FindOne returns the todo with the given id
func (s *Store) FindOne(ctx context.Context, id int64) (todo.Todo, error) {
	const query = "SELECT id, title, completed, created_at FROM todos WHERE id = ?"
	t, err := scanTodo(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return todo.Todo{}, err
	}
	return t, nil
}

// Update sets the completion flag of one todo
func (s *Store) Update(ctx context.Context, u todo.Update) error {
	return update(ctx, s.db, u)
}

// UpdateMany applies all updates in one transaction. Either every update
// is stored or none is.
func (s *Store) UpdateMany(ctx context.Context, updates []todo.Update) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range updates {
		if err := update(ctx, tx, u); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit updates: %w", err)
	}
	return nil
}

// DeleteOne removes the todo with the given id
func (s *Store) DeleteOne(ctx context.Context, id int64) error {
	const query = "DELETE FROM todos WHERE id = ?"
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return checkAffected(res, query, id)
}

// DeleteAll removes every todo and returns how many were deleted
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	const query = "DELETE FROM todos"
	res, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete todos: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted todos: %w", err)
	}
	logging.LogQuery(query, n)
	return n, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func update(ctx context.Context, db execer, u todo.Update) error {
	const query = "UPDATE todos SET completed = ? WHERE id = ?"
	res, err := db.ExecContext(ctx, query, u.Completed, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo %d: %w", u.ID, err)
	}
	return checkAffected(res, query, u.ID)
}

func checkAffected(res sql.Result, query string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check todo %d: %w", id, err)
	}
	logging.LogQuery(query, n)
	if n == 0 {
		return fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (todo.Todo, error) {
	var (
		t         todo.Todo
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return todo.Todo{}, err
		}
		return todo.Todo{}, fmt.Errorf("failed to read todo: %w", err)
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("todo %d has invalid created_at %q: %w", t.ID, createdAt, err)
	}
	t.CreatedAt = created.Local()
	return t, nil
}
