package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tickbox/internal/config"
	"github.com/muurk/tickbox/internal/logging"
	"github.com/muurk/tickbox/internal/selectlist"
	"github.com/muurk/tickbox/internal/store"
	"github.com/muurk/tickbox/internal/todo"
	"github.com/muurk/tickbox/internal/ui"
	"github.com/muurk/tickbox/internal/version"
)

func newRootCmd(a *app) *cobra.Command {
	var addFlag, listFlag, plain bool

	rootCmd := &cobra.Command{
		Use:   "tickbox",
		Short: "A terminal todo list with an interactive checklist",
		Long: `Tickbox keeps todos in a local SQLite database.

'tickbox list' opens a checklist: use the arrow keys to move, space or
enter to tick a todo off and ctrl+c to save and leave.

The short flags -a and -l are shortcuts for the add and list commands.`,
		Example: `  tickbox -a buy milk
  tickbox -l
  tickbox list --plain`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(a.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case addFlag && listFlag:
				return errors.New("-a and -l cannot be combined")
			case addFlag:
				return runAdd(a, cmd, args)
			case listFlag:
				if len(args) > 0 {
					return fmt.Errorf("list takes no arguments, got %q", strings.Join(args, " "))
				}
				return runList(a, cmd, plain)
			case len(args) > 0:
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			default:
				return cmd.Help()
			}
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("tickbox {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to the todo database (overrides "+config.DatabaseEnvVar+" and the config file)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.Flags().BoolVarP(&addFlag, "add", "a", false, "Add a todo from the remaining arguments")
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List todos")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "With -l, print todos instead of opening the checklist")

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newClearCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a new todo",
		Long: `Add a new todo. All arguments are joined into the title.

Without arguments and on a terminal, tickbox asks for the title.`,
		Example: `  tickbox add buy milk
  tickbox add "call the landlord"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(a, cmd, args)
		},
	}
}

func runAdd(a *app, cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	title := strings.TrimSpace(strings.Join(args, " "))

	if title == "" {
		if !a.interactive() {
			return errors.New("a title is required: tickbox add <title>")
		}
		var err error
		if title, err = a.promptTitle(cmd); err != nil {
			return err
		}
		if title == "" {
			p.Println(ui.HintStyle.Render("Nothing added."))
			return nil
		}
	}

	s, err := a.open(cmd.Context())
	if err != nil {
		return err
	}

	id, err := s.Create(cmd.Context(), todo.Create{Title: title})
	if err != nil {
		return err
	}
	logging.Info("Todo added", zap.Int64("id", id))

	p.PrintSuccess("Todo added",
		ui.Detail{Key: "ID", Value: strconv.FormatInt(id, 10)},
		ui.Detail{Key: "Title", Value: strings.TrimSpace(title)},
	)
	return nil
}

func newListCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show todos and tick them off",
		Long: `Open an interactive checklist of all todos.

  ↑/↓          move the cursor
  space/enter  tick or untick the todo under the cursor
  ctrl+c       save and leave

When stdin is not a terminal, or with --plain, todos are printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(a, cmd, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print todos instead of opening the checklist")
	return cmd
}

func runList(a *app, cmd *cobra.Command, plain bool) error {
	s, err := a.open(cmd.Context())
	if err != nil {
		return err
	}
	todos, err := s.FindAll(cmd.Context())
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if len(todos) == 0 {
		p.Println(ui.HintStyle.Render("No todos yet. Add one with: tickbox add <title>"))
		return nil
	}

	if plain || !a.interactive() {
		for _, t := range todos {
			glyph := "[ ]"
			if t.Completed {
				glyph = "[x]"
			}
			p.Printf("%s %s\n", glyph, t)
		}
		return nil
	}

	prefs := a.registry.Preferences
	sel, err := selectlist.New[todo.Todo]().
		WithPrompt(prefs.Prompt).
		Items(todos...).
		SetMarked(todo.Completed(todos)...).
		WithConsole(a.console(cmd)).
		WithGlyphs(glyphs(prefs)).
		WithWidth(a.width()).
		WithHelp(prefs.ShowHelp).
		Run()
	if err != nil {
		return err
	}

	updates := todo.Reconcile(todos, sel.GetMarked())
	if err := s.UpdateMany(cmd.Context(), updates); err != nil {
		return err
	}

	if len(updates) > 0 {
		p.Println(ui.HintStyle.Render(fmt.Sprintf("Saved %d change(s).", len(updates))))
	}
	return nil
}

// glyphs maps the configured markers onto the checklist. The blank prefix
// matches the cursor marker's width so rows stay aligned.
func glyphs(prefs *config.Preferences) selectlist.Glyphs {
	return selectlist.Glyphs{
		Cursor:   prefs.CursorMarker,
		Blank:    strings.Repeat(" ", lipgloss.Width(prefs.CursorMarker)),
		Marked:   prefs.MarkedGlyph,
		Unmarked: prefs.UnmarkedGlyph,
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one todo",
		Example: `  tickbox delete 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid todo id %q", args[0])
			}

			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			t, err := s.FindOne(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no todo with id %d (see 'tickbox list --plain')", id)
			}
			if err != nil {
				return err
			}
			if err := s.DeleteOne(cmd.Context(), id); err != nil {
				return err
			}

			ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Todo deleted",
				ui.Detail{Key: "ID", Value: args[0]},
				ui.Detail{Key: "Title", Value: t.Title},
			)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every todo",
		Long: `Delete every todo, completed or not.

Unless --yes is given or confirm_clear is off in the config file, you
must type "` + ui.ConfirmPhrase + `" to continue.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			todos, err := s.FindAll(cmd.Context())
			if err != nil {
				return err
			}

			p := ui.NewPrinter(cmd.OutOrStdout())
			if len(todos) == 0 {
				p.PrintWarning("Nothing to clear")
				return nil
			}

			if !yes && a.registry.Preferences.ConfirmClear {
				if !ui.ConfirmClear(cmd.InOrStdin(), p, len(todos)) {
					return nil
				}
			}

			n, err := s.DeleteAll(cmd.Context())
			if err != nil {
				return err
			}
			p.PrintSuccess("Todos cleared", ui.Detail{Key: "Deleted", Value: strconv.FormatInt(n, 10)})
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(force)
			if err != nil {
				return err
			}
			ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written", ui.Detail{Key: "Path", Value: path})
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tickbox %s\n", version.Full())
		},
	}
}
