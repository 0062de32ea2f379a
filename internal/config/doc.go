// Package config manages the tickbox YAML configuration file.
//
// The file holds the database location and the look of the interactive
// list. It follows OS conventions for its location:
//   - Linux: $XDG_CONFIG_HOME/tickbox/config.yaml or $HOME/.config/tickbox/config.yaml
//   - macOS: $HOME/.config/tickbox/config.yaml
//   - Windows: %LOCALAPPDATA%\tickbox\config.yaml
//
// A missing file is not an error; Load returns the defaults.
//
// # Usage Example
//
//	registry, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	dbPath, err := registry.DatabasePath(dbFlag)
//	if err != nil {
//	    return err
//	}
//
// Saves are serialised by a mutex and written atomically through a
// temporary file.
package config
