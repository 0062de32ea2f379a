// Package todo holds the todo record and the logic that turns a finished
// select session into completion updates.
package todo

import (
	"fmt"
	"time"
)

// TimeLayout is how creation times are shown next to a title
const TimeLayout = "2006-01-02 15:04:05"

// Todo is a persisted todo item.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}

// String renders the todo as "<title> - <created at>"
func (t Todo) String() string {
	return fmt.Sprintf("%s - %s", t.Title, t.CreatedAt.Format(TimeLayout))
}

// Identity implements selectlist.Item
func (t Todo) Identity() int64 {
	return t.ID
}

// Create holds the fields needed to add a todo.
type Create struct {
	Title string
}

// Update sets the completion flag of one todo.
type Update struct {
	ID        int64
	Completed bool
}

// Completed returns the completed todos in their original order
func Completed(todos []Todo) []Todo {
	var done []Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		}
	}
	return done
}

// Reconcile compares the stored completion of every todo with its
// membership in marked and returns one Update per todo that has to flip.
// Marked items that are not in todos are ignored.
func Reconcile(todos []Todo, marked []Todo) []Update {
	want := make(map[int64]bool, len(marked))
	for _, m := range marked {
		want[m.ID] = true
	}

	var updates []Update
	for _, t := range todos {
		if done := want[t.ID]; done != t.Completed {
			updates = append(updates, Update{ID: t.ID, Completed: done})
		}
	}
	return updates
}
