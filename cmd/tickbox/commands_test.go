package main

import (
	"bytes"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/tickbox/internal/config"
	"github.com/muurk/tickbox/internal/logging"
	"github.com/muurk/tickbox/internal/selectlist"
)

// scriptConsole replays a fixed key sequence
type scriptConsole struct {
	out  io.Writer
	keys *selectlist.KeyReader
}

func (c *scriptConsole) Write(p []byte) (int, error)      { return c.out.Write(p) }
func (c *scriptConsole) Output() io.Writer                { return c.out }
func (c *scriptConsole) MakeRaw() (func() error, error)   { return func() error { return nil }, nil }
func (c *scriptConsole) ReadKey() (selectlist.Key, error) { return c.keys.ReadKey() }

type harness struct {
	t   *testing.T
	app *app
	db  string

	keys   string // fed to the checklist
	stdin  string // fed to confirmations
	prompt string // returned by the title prompt
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.DatabaseEnvVar, "")
	t.Setenv(logging.LogLevelEnvVar, "")

	h := &harness{t: t, db: filepath.Join(t.TempDir(), "todos.db")}
	h.app = &app{
		interactive: func() bool { return false },
		width:       func() int { return 80 },
	}
	h.app.console = func(cmd *cobra.Command) selectlist.Console {
		return &scriptConsole{out: cmd.OutOrStdout(), keys: selectlist.NewKeyReader(strings.NewReader(h.keys))}
	}
	h.app.promptTitle = func(*cobra.Command) (string, error) { return h.prompt, nil }
	t.Cleanup(h.app.close)
	return h
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(h.app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(h.stdin))
	cmd.SetArgs(append([]string{"--db", h.db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *harness) plainLines() []string {
	h.t.Helper()
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(h.mustRun("list", "--plain")), "\n") {
		// drop the " - <created at>" suffix
		title, _, _ := strings.Cut(line, " - ")
		lines = append(lines, title)
	}
	return lines
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("add", "buy", "milk")
	assert.Contains(t, out, "Todo added")
	assert.Contains(t, out, "buy milk")

	h.mustRun("-a", "pay", "rent")

	assert.Equal(t, []string{"[ ] buy milk", "[ ] pay rent"}, h.plainLines())

	out = h.mustRun("-l")
	assert.Contains(t, out, "[ ] pay rent", "non-terminal stdin falls back to plain output")
}

func TestAdd_RequiresTitle(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	_, err = h.run("add", "   ")
	assert.Error(t, err)
}

func TestAdd_Prompt(t *testing.T) {
	h := newHarness(t)
	h.app.interactive = func() bool { return true }

	h.prompt = "water plants"
	h.mustRun("add")

	h.prompt = ""
	out := h.mustRun("add")
	assert.Contains(t, out, "Nothing added")

	assert.Equal(t, []string{"[ ] water plants"}, h.plainLines())
}

func TestList_Empty(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("list"), "No todos yet")
}

func TestList_Interactive(t *testing.T) {
	h := newHarness(t)
	for _, title := range []string{"a", "b", "c"} {
		h.mustRun("add", title)
	}
	h.app.interactive = func() bool { return true }

	// tick b
	h.keys = "\x1b[B" + " " + "\x03"
	out := h.mustRun("list")
	assert.Contains(t, out, "Select todos to complete")
	assert.Contains(t, out, "Saved 1 change(s).")
	assert.Equal(t, []string{"[ ] a", "[x] b", "[ ] c"}, h.plainLines())

	// untick b, tick c
	h.keys = "\x1b[B" + "\r" + "\x1b[B" + " " + "\x03"
	out = h.mustRun("list")
	assert.Contains(t, out, "[x] b", "completed todos start marked")
	assert.Contains(t, out, "Saved 2 change(s).")
	assert.Equal(t, []string{"[ ] a", "[ ] b", "[x] c"}, h.plainLines())

	// leaving without changes saves nothing
	h.keys = "\x03"
	assert.NotContains(t, h.mustRun("list"), "Saved")
}

func TestList_InteractiveReadFailure(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "a")
	h.app.interactive = func() bool { return true }

	// input ends before ctrl+c
	h.keys = " "
	_, err := h.run("list")
	require.Error(t, err)
	assert.True(t, selectlist.IsReadError(err))
	assert.Equal(t, []string{"[ ] a"}, h.plainLines(), "nothing is saved after a terminal failure")
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "a")
	h.mustRun("add", "b")

	out := h.mustRun("delete", "1")
	assert.Contains(t, out, "Todo deleted")
	assert.Equal(t, []string{"[ ] b"}, h.plainLines())

	_, err := h.run("delete", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no todo with id 1")

	_, err = h.run("rm", "abc")
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("clear"), "Nothing to clear")

	h.mustRun("add", "a")
	h.mustRun("add", "b")

	h.stdin = "no\n"
	out := h.mustRun("clear")
	assert.Contains(t, out, "2 todo(s)")
	assert.Contains(t, out, "cancelled")
	assert.Len(t, h.plainLines(), 2)

	h.stdin = "yes\n"
	assert.Contains(t, h.mustRun("clear"), "Todos cleared")
	assert.Contains(t, h.mustRun("list"), "No todos yet")

	h.stdin = ""
	h.mustRun("add", "c")
	assert.Contains(t, h.mustRun("clear", "--yes"), "Todos cleared")
}

func TestConfigCommands(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}
	h := newHarness(t)

	path := strings.TrimSpace(h.mustRun("config", "path"))
	assert.True(t, strings.HasSuffix(path, filepath.Join("tickbox", "config.yaml")), path)

	assert.Contains(t, h.mustRun("config", "init"), "Configuration written")
	_, err := h.run("config", "init")
	assert.Error(t, err, "init must not overwrite without --force")
	h.mustRun("config", "init", "--force")
}

func TestVersionAndFlags(t *testing.T) {
	h := newHarness(t)

	assert.True(t, strings.HasPrefix(h.mustRun("version"), "tickbox "))

	_, err := h.run("--log-level", "loud", "list")
	assert.Error(t, err)

	_, err = h.run("frobnicate")
	assert.Error(t, err)

	_, err = h.run("-a", "-l")
	assert.Error(t, err)
}

func TestGlyphs(t *testing.T) {
	prefs := config.DefaultPreferences()
	prefs.CursorMarker = "→→ "

	g := glyphs(prefs)
	assert.Equal(t, "   ", g.Blank)
	assert.Equal(t, "[x] ", g.Marked)
}

func TestList_UnopenableDatabase(t *testing.T) {
	h := newHarness(t)
	h.db = filepath.Join(t.TempDir(), "missing-dir", "todos.db")

	_, err := h.run("list")
	assert.Error(t, err)
}
