// Package selectlist implements an interactive multi-select list that runs
// directly on the terminal.
//
// The widget draws a prompt followed by one line per item, highlights the
// row under the cursor and shows a mark glyph in front of every row. The
// user moves with the arrow keys, toggles the row under the cursor with
// space or enter, and ends the session with ctrl+c. It does not use a TUI
// framework: keys are decoded from raw terminal bytes and every frame is
// redrawn by hand.
//
// # Items
//
// Any type satisfying Item can be listed. The widget stores copies of the
// items it is given and compares them by Identity, never by value:
//
//	type Todo struct {
//	    ID    int64
//	    Title string
//	}
//
//	func (t Todo) String() string   { return t.Title }
//	func (t Todo) Identity() int64  { return t.ID }
//
// # Usage
//
//	sel, err := selectlist.New[Todo]().
//	    WithPrompt("Todos").
//	    Items(todos...).
//	    Default(0).
//	    SetMarked(done...).
//	    Run()
//	if err != nil {
//	    return err
//	}
//	marked := sel.GetMarked()
//
// # Terminal Mode
//
// Raw mode is held only while a key is being read. The widget switches the
// terminal into raw mode immediately before each blocking read and restores
// the previous mode right after it, on every path including errors and the
// final ctrl+c. Frames are therefore always written in cooked mode.
//
// # Errors
//
// Failing to enter raw mode, to read a key, to restore the terminal or to
// write a frame ends the session with a *TerminalError. Nothing is retried.
package selectlist
