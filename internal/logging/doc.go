// Package logging provides structured logging for tickbox.
//
// It wraps a global zap logger with a few helpers for the events the
// application cares about: key presses inside the select list, mark
// toggles, SQL statements and schema migrations.
//
// # Silent by Default
//
// tickbox is an interactive terminal program, so log output must never
// land on top of the list. The logger is a no-op unless a level is given
// explicitly or through the TICKBOX_LOG_LEVEL environment variable, and
// when enabled it writes to stderr:
//
//	TICKBOX_LOG_LEVEL=debug tickbox list 2>debug.log
//
// # Initialization
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Fields
//
//	logging.Info("Todo added",
//	    zap.Int64("id", id),
//	    zap.String("title", title),
//	)
package logging
