package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName      = "tickbox"
	configFile   = "config.yaml"
	databaseFile = "tickbox.db"

	// DatabaseEnvVar overrides the database path from the config file
	DatabaseEnvVar = "TICKBOX_DB"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/tickbox or $HOME/.config/tickbox
//   - macOS: $HOME/.config/tickbox
//   - Windows: %LOCALAPPDATA%\tickbox
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration from disk. A missing file yields the
// defaults; an unreadable or unsupported file is an error.
func Load() (*Registry, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFile(configPath)
}

// LoadFile reads the configuration at path
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// keys missing from the file keep their defaults
	registry := Registry{Preferences: DefaultPreferences()}
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if registry.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, CurrentVersion)
	}

	if registry.Preferences == nil {
		registry.Preferences = DefaultPreferences()
	}
	registry.Preferences.fillDefaults()

	return &registry, nil
}

// Save writes the registry to the default config path.
func (r *Registry) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return r.SaveFile(configPath)
}

// SaveFile writes the registry to path via a temporary file and rename.
func (r *Registry) SaveFile(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# tickbox configuration
#
# database: path to the SQLite file (empty means next to this file).
#           The ` + DatabaseEnvVar + ` variable and --db flag take precedence.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// DatabasePath resolves where the todo database lives. The flag value
// wins over $TICKBOX_DB, which wins over the config file, which wins over
// <config dir>/tickbox.db.
func (r *Registry) DatabasePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(DatabaseEnvVar); env != "" {
		return env, nil
	}
	if r != nil && r.Database != "" {
		return r.Database, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(configDir, databaseFile), nil
}

// CreateDefaultConfig writes a default configuration file and returns its
// path. An existing file is only replaced when force is set.
func CreateDefaultConfig(force bool) (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, fmt.Errorf("config file already exists: %s", configPath)
		}
	}

	return configPath, NewRegistry().SaveFile(configPath)
}
