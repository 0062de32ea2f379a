package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Detail is one "key: value" line of a result box
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string   // e.g., "Todo added"
	Details []Detail // Printed in order
	Error   error    // Failure results only
	Hints   []string // Suggestions shown under a failure
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	var lines []string

	switch r.Type {
	case ResultFailure:
		lines = append(lines, ErrorTitleStyle.Render(FailureMarker+"  "+r.Title))
		if r.Error != nil {
			lines = append(lines, ErrorMessageStyle.Render("Error: "+r.Error.Error()))
		}
	case ResultWarning:
		lines = append(lines, WarningTitleStyle.Render(WarningMarker+"  "+r.Title))
	default:
		lines = append(lines, SuccessTitleStyle.Render(SuccessMarker+"  "+r.Title))
	}

	for _, d := range r.Details {
		lines = append(lines, DetailKeyStyle.Render(d.Key+":")+" "+DetailValueStyle.Render(d.Value))
	}
	for _, hint := range r.Hints {
		lines = append(lines, HintStyle.Render("• "+hint))
	}

	return boxStyle(r.color(), r.Width).Render(strings.Join(lines, "\n"))
}

func (r *Result) color() lipgloss.Color {
	switch r.Type {
	case ResultFailure:
		return ErrorColor
	case ResultWarning:
		return WarningColor
	default:
		return SuccessColor
	}
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
