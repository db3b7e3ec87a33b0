// Package config loads and persists user settings from the standard
// platform configuration directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config represents application configuration.
type Config struct {
	// Digits is the significant digit count for formatted results.
	Digits int `json:"digits"`
	// Scientific forces scientific notation for float results.
	Scientific bool `json:"scientific"`
	// Delimiter separates statements within one input line.
	Delimiter string `json:"delimiter"`
	// RequireUnderscore rejects variable names without a leading underscore,
	// which keeps user bindings from shadowing registry names.
	RequireUnderscore bool `json:"require_underscore"`
	// NoColor disables ANSI colors in the interactive session.
	NoColor bool `json:"no_color"`
	// HistoryPath is the SQLite history database location.
	HistoryPath string `json:"history_path"`
	// LogLevel is one of debug, info, warn, error, none.
	LogLevel string `json:"log_level"`
	LogPath  string `json:"log_path"`
	// WebPort is the listen port for the web front end.
	WebPort int `json:"web_port"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "acap")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", "acap")
	default:
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "acap")
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "linux":
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, "acap")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", "acap")
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, "acap")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", "acap")
	default:
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "acap")
	}
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	stateDir := defaultStateDir()

	return &Config{
		Digits:      10,
		Delimiter:   ",",
		HistoryPath: filepath.Join(stateDir, "history.db"),
		LogLevel:    "info",
		LogPath:     filepath.Join(stateDir, "acap.log"),
		WebPort:     8326,
	}
}

// Load reads configuration from path, merged over defaults. A missing file
// is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	// Unmarshal into the defaults so only provided fields override.
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	stateDir := defaultStateDir()
	if config.Digits <= 0 {
		config.Digits = 10
	}
	if config.Delimiter == "" {
		config.Delimiter = ","
	}
	if config.HistoryPath == "" {
		config.HistoryPath = filepath.Join(stateDir, "history.db")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(stateDir, "acap.log")
	}
	if config.WebPort <= 0 {
		config.WebPort = 8326
	}

	return config, nil
}

// ApplyEnv applies environment variable overrides, which win over both the
// file and the defaults.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("ACAP_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("ACAP_LOG_PATH")); v != "" {
		c.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("ACAP_HISTORY_PATH")); v != "" {
		c.HistoryPath = v
	}
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
}

// Save writes configuration to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path.
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
