package config

// CurrentVersion is the only config file format this build understands
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Database    string       `yaml:"database,omitempty"` // Empty means <config dir>/tickbox.db
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences controls how the interactive list looks and behaves.
type Preferences struct {
	Prompt        string `yaml:"prompt"`         // Line shown above the list
	CursorMarker  string `yaml:"cursor_marker"`  // Prefix of the row under the cursor
	MarkedGlyph   string `yaml:"marked_glyph"`   // Shown before completed todos
	UnmarkedGlyph string `yaml:"unmarked_glyph"` // Shown before open todos
	ShowHelp      bool   `yaml:"show_help"`      // Key hints below the list
	ConfirmClear  bool   `yaml:"confirm_clear"`  // Ask before "tickbox clear"
}

// DefaultPreferences returns the preferences used when the file has none.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Prompt:        "Select todos to complete",
		CursorMarker:  "> ",
		MarkedGlyph:   "[x] ",
		UnmarkedGlyph: "[ ] ",
		ShowHelp:      true,
		ConfirmClear:  true,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// fillDefaults replaces glyph and prompt settings that were set to the
// empty string with defaults.
func (p *Preferences) fillDefaults() {
	def := DefaultPreferences()
	if p.Prompt == "" {
		p.Prompt = def.Prompt
	}
	if p.CursorMarker == "" {
		p.CursorMarker = def.CursorMarker
	}
	if p.MarkedGlyph == "" {
		p.MarkedGlyph = def.MarkedGlyph
	}
	if p.UnmarkedGlyph == "" {
		p.UnmarkedGlyph = def.UnmarkedGlyph
	}
}
