// Tickbox is a small todo manager for the terminal.
//
// Todos live in a local SQLite database. The list command opens an
// interactive checklist: arrow keys move, space or enter ticks a todo off,
// ctrl+c saves and leaves.
//
// Usage:
//
//	tickbox add buy milk
//	tickbox list
//	tickbox -l --plain
//
// See 'tickbox --help' for all commands.
package main

import (
	"fmt"
	"os"

	"github.com/muurk/tickbox/internal/logging"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	a.close()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
