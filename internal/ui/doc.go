// Package ui provides the styled, non-interactive output of the tickbox CLI
// plus its small interactive prompts.
//
// Result boxes report the outcome of a command:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintSuccess("Todo added", ui.Detail{Key: "ID", Value: "3"})
//
// ConfirmDangerousOperation guards destructive commands with a typed
// confirmation, and PromptTitle asks for a todo title with a Bubble Tea
// text input when none was given on the command line.
//
// Colors degrade to plain text when output is not a terminal. Logging is
// controlled separately through TICKBOX_LOG_LEVEL and goes to stderr, so it
// never mixes with this output.
package ui
