package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tickbox/internal/config"
	"github.com/muurk/tickbox/internal/logging"
	"github.com/muurk/tickbox/internal/selectlist"
	"github.com/muurk/tickbox/internal/store"
	"github.com/muurk/tickbox/internal/ui"
)

// app carries the global flags and the lazily opened resources shared by
// all commands.
type app struct {
	dbPath   string
	logLevel string

	registry *config.Registry
	store    *store.Store

	// interactive reports whether stdin is a terminal
	interactive func() bool
	// console returns the device the checklist is drawn on
	console func(cmd *cobra.Command) selectlist.Console
	// promptTitle asks for a todo title when add gets no arguments
	promptTitle func(cmd *cobra.Command) (string, error)
	// width is the width list rows are truncated to
	width func() int
}

func newApp() *app {
	return &app{
		interactive: func() bool { return ui.IsTerminal(os.Stdin) },
		console: func(cmd *cobra.Command) selectlist.Console {
			return selectlist.NewTTY(os.Stdin, cmd.OutOrStdout())
		},
		promptTitle: func(cmd *cobra.Command) (string, error) {
			return ui.PromptTitle(os.Stdin, cmd.OutOrStdout())
		},
		width: ui.TerminalColumns,
	}
}

// loadConfig loads the configuration file once
func (a *app) loadConfig() (*config.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	reg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a.registry = reg
	return reg, nil
}

// open resolves the database path and opens the store once
func (a *app) open(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	reg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	path, err := reg.DatabasePath(a.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	logging.Debug("Opening database", zap.String("path", path))
	s, err := store.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logging.Warn("Failed to close database", zap.Error(err))
	}
	a.store = nil
}
