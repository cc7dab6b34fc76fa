// Package config handles XDG configuration directory, file paths and the
// optional config.toml settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// SettingsFile is the optional TOML settings filename.
	SettingsFile = "config.toml"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings holds values read from config.toml.
	Settings Settings

	// Logger receives diagnostic output. Nil means discard.
	Logger *log.Logger
}

// Settings mirrors config.toml.
type Settings struct {
	Push PushSettings `toml:"push"`
	UI   UISettings   `toml:"ui"`
	Log  LogSettings  `toml:"log"`
}

// PushSettings controls where "push" exports a board.
type PushSettings struct {
	// List is the Google Tasks list title. Empty means the default list.
	List string `toml:"list"`

	// CreateMissing creates List when it does not exist.
	CreateMissing bool `toml:"create_missing"`
}

// UISettings controls the interactive UI.
type UISettings struct {
	Title string `toml:"title"`
}

// LogSettings controls the logger built by internal/logging.
type LogSettings struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json, logfmt
}

// DefaultSettings returns the settings used when config.toml is absent.
func DefaultSettings() Settings {
	return Settings{
		UI:  UISettings{Title: "TODO"},
		Log: LogSettings{Level: "info", Format: "text"},
	}
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Settings: DefaultSettings()}, nil
}

// Load is New followed by LoadSettings.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// SettingsPath returns the path to config.toml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// LoadSettings decodes config.toml over the defaults.
// A missing file is not an error.
func (c *Config) LoadSettings() error {
	settings := DefaultSettings()
	_, err := toml.DecodeFile(c.SettingsPath(), &settings)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Settings = DefaultSettings()
			return nil
		}
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	c.Settings = settings
	return nil
}

// Log returns the configured logger, or a logger that discards everything.
func (c *Config) Log() *log.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
