// Package store persists todos in SQLite.
//
// The database is opened through database/sql with the pure Go
// modernc.org/sqlite driver, so no cgo toolchain is needed. The schema is
// kept in embedded SQL files under migrations/ and applied in version
// order by Open; applied versions are recorded in schema_migrations, so
// opening an up to date database is a no-op.
//
// Usage:
//
//	st, err := store.Open(ctx, path)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	id, err := st.Create(ctx, todo.Create{Title: "buy milk"})
//	todos, err := st.FindAll(ctx)
//	err = st.UpdateMany(ctx, todo.Reconcile(todos, marked))
//
// Use ":memory:" as the path for a throwaway database.
package store
