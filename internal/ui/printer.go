package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes styled CLI output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	width := MaxContentWidth
	if f, ok := w.(*os.File); ok {
		width = terminalWidth(int(f.Fd()))
	}
	return &Printer{out: w, width: width}
}

// Width returns the width boxes are rendered at
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box with hints
func (p *Printer) PrintError(title string, err error, hints ...string) {
	p.Println(NewFailureResult(title, err, hints...).SetWidth(p.width).Render())
}
