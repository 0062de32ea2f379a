package store

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/tickbox/internal/todo"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesMigrations(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	// running again is a no-op
	require.NoError(t, s.Migrate(ctx))
	var applied int
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 2, applied)
}

func TestOpen_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	id, err := s.Create(ctx, todo.Create{Title: "water plants"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "water plants", got.Title)
}

func TestCreate_FindAll(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	created := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	first, err := s.Create(ctx, todo.Create{Title: "buy milk"})
	require.NoError(t, err)
	second, err := s.Create(ctx, todo.Create{Title: "  pay rent  "})
	require.NoError(t, err)
	assert.Less(t, first, second)

	todos, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, first, todos[0].ID)
	assert.Equal(t, "buy milk", todos[0].Title)
	assert.False(t, todos[0].Completed)
	assert.True(t, created.Equal(todos[0].CreatedAt))
	assert.Equal(t, "pay rent", todos[1].Title, "titles are trimmed")
}

func TestCreate_EmptyTitle(t *testing.T) {
	s := openMemory(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(context.Background(), todo.Create{Title: title})
		assert.ErrorIs(t, err, ErrEmptyTitle, "title %q", title)
	}

	todos, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestFindOne_NotFound(t *testing.T) {
	s := openMemory(t)

	_, err := s.FindOne(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	id, err := s.Create(ctx, todo.Create{Title: "call mum"})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, todo.Update{ID: id, Completed: true}))
	got, err := s.FindOne(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	err = s.Update(ctx, todo.Update{ID: id + 1, Completed: true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMany_AppliesReconcile(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, todo.Create{Title: title})
		require.NoError(t, err)
	}
	require.NoError(t, s.Update(ctx, todo.Update{ID: 1, Completed: true}))

	todos, err := s.FindAll(ctx)
	require.NoError(t, err)

	// unmark a, mark c
	updates := todo.Reconcile(todos, []todo.Todo{todos[2]})
	require.Len(t, updates, 2)
	require.NoError(t, s.UpdateMany(ctx, updates))

	todos, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{todos[2]}, todo.Completed(todos))
}

func TestUpdateMany_RollsBack(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	id, err := s.Create(ctx, todo.Create{Title: "a"})
	require.NoError(t, err)

	err = s.UpdateMany(ctx, []todo.Update{
		{ID: id, Completed: true},
		{ID: 99, Completed: true},
	})
	require.ErrorIs(t, err, ErrNotFound)

	got, err := s.FindOne(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Completed, "first update must be rolled back")
}

func TestUpdateMany_Empty(t *testing.T) {
	s := openMemory(t)
	assert.NoError(t, s.UpdateMany(context.Background(), nil))
}

func TestDelete(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, todo.Create{Title: title})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteOne(ctx, 2))
	assert.ErrorIs(t, s.DeleteOne(ctx, 2), ErrNotFound)

	n, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER)")},
		"migrations/0001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER)")},
		"migrations/README":          {Data: []byte("ignored")},
	}

	got, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].version)
	assert.Equal(t, "first", got[0].name)
	assert.Equal(t, 2, got[1].version)
}

func TestLoadMigrations_Invalid(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"no separator": {"migrations/0001.sql": {Data: []byte("")}},
		"bad version":  {"migrations/abc_x.sql": {Data: []byte("")}},
		"zero version": {"migrations/0000_x.sql": {Data: []byte("")}},
		"duplicate": {
			"migrations/0001_a.sql": {Data: []byte("")},
			"migrations/1_b.sql":    {Data: []byte("")},
		},
	}
	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadMigrations(fsys)
			assert.Error(t, err)
		})
	}
}

func TestMigrate_FailureIsNotRecorded(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"migrations/0001_create_todos.sql": {Data: []byte("SELECT 1")},
		"migrations/0002_index.sql":        {Data: []byte("SELECT 1")},
		"migrations/0003_broken.sql":       {Data: []byte("CREATE TABLE")},
	}
	require.Error(t, s.migrate(ctx, fsys))

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
