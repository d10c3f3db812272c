package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todaysthought/internal/notes"
	"todaysthought/internal/prompts"
)

const (
	DefaultFolder = "/Journal"
	DefaultFormat = "YYYY-MM-DD"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the unified application configuration
type Config struct {
	Vault           string   `json:"vault"`
	DailyNoteFolder string   `json:"dailyNoteFolder"`
	DailyNoteFormat string   `json:"dailyNoteFormat"`
	Prompts         []string `json:"prompts"`

	path string // config file the settings are saved to
}

// Settings represents the config file structure
type Settings struct {
	Vault           string   `json:"vault,omitempty"`
	DailyNoteFolder string   `json:"dailyNoteFolder,omitempty"`
	DailyNoteFormat string   `json:"dailyNoteFormat,omitempty"`
	Prompts         []string `json:"prompts"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Vault  string
	Folder string
	Format string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	defaultVault, err := GetDefaultVault()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Vault:           defaultVault,
		DailyNoteFolder: DefaultFolder,
		DailyNoteFormat: DefaultFormat,
		Prompts:         prompts.Defaults(),
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	cfg.path = configPath

	// Saved settings are merged over the defaults
	if fileConfig, err := loadConfigFile(configPath); err == nil {
		if fileConfig.Vault != "" {
			cfg.Vault = fileConfig.Vault
		}
		if fileConfig.DailyNoteFolder != "" {
			cfg.DailyNoteFolder = fileConfig.DailyNoteFolder
		}
		if fileConfig.DailyNoteFormat != "" {
			cfg.DailyNoteFormat = fileConfig.DailyNoteFormat
		}
		// An explicitly saved empty list stays empty
		if fileConfig.Prompts != nil {
			cfg.Prompts = fileConfig.Prompts
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", configPath, err)
	}

	// Priority 2: Environment variables override config file
	if v := os.Getenv("TODAYSTHOUGHT_VAULT"); v != "" {
		cfg.Vault = v
	}
	if v := os.Getenv("TODAYSTHOUGHT_FOLDER"); v != "" {
		cfg.DailyNoteFolder = v
	}
	if v := os.Getenv("TODAYSTHOUGHT_FORMAT"); v != "" {
		cfg.DailyNoteFormat = v
	}

	// Priority 1: CLI flags override everything
	if flags.Vault != "" {
		cfg.Vault = flags.Vault
	}
	if flags.Folder != "" {
		cfg.DailyNoteFolder = flags.Folder
	}
	if flags.Format != "" {
		cfg.DailyNoteFormat = flags.Format
	}

	cfg.Vault = expandPath(cfg.Vault)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise produce unusable paths.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DailyNoteFormat) == "" {
		return fmt.Errorf("%w: daily note format is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Vault) == "" {
		return fmt.Errorf("%w: vault path is empty", ErrInvalidConfig)
	}
	return nil
}

// Layout returns the daily-note layout the settings describe.
func (c *Config) Layout() notes.Layout {
	return notes.Layout{Folder: c.DailyNoteFolder, Format: c.DailyNoteFormat}
}

// Path returns the config file this Config is saved to.
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory holding the config file.
func (c *Config) Dir() string {
	if c.path == "" {
		return ""
	}
	return filepath.Dir(c.path)
}

// Save persists the settings to the config file.
func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := GetConfigPath()
		if err != nil {
			return err
		}
		c.path = configPath
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	settingsPrompts := c.Prompts
	if settingsPrompts == nil {
		settingsPrompts = []string{}
	}
	settings := Settings{
		Vault:           c.Vault,
		DailyNoteFolder: c.DailyNoteFolder,
		DailyNoteFormat: c.DailyNoteFormat,
		Prompts:         settingsPrompts,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

// GetDefaultVault returns the default vault path
func GetDefaultVault() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "vault"), nil
}

// GetConfigPath returns the path to the configuration file. It can be
// overridden with TODAYSTHOUGHT_CONFIG.
func GetConfigPath() (string, error) {
	if p := os.Getenv("TODAYSTHOUGHT_CONFIG"); p != "" {
		return expandPath(p), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todaysthought", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaultVault, err := GetDefaultVault()
	if err != nil {
		return err
	}

	cfg := &Config{
		Vault:           defaultVault,
		DailyNoteFolder: DefaultFolder,
		DailyNoteFormat: DefaultFormat,
		Prompts:         prompts.Defaults(),
		path:            configPath,
	}
	return cfg.Save()
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
