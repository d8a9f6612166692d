// Package config resolves the configuration directory, its files, and the
// optional dotenv overrides stored there.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "remind"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// TasksFile is the default task file name.
	TasksFile = "tasks.yaml"

	// EnvFile holds optional KEY=value overrides.
	EnvFile = "remind.env"
)

// Keys read from EnvFile or the process environment. The environment wins.
const (
	EnvTasks = "REMIND_TASKS"
	EnvList  = "REMIND_LIST"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File overrides the task file path (--file).
	File string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	env map[string]string
}

// New creates a Config for configDir, or the default directory when empty,
// and loads EnvFile from it when present.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	env, err := godotenv.Read(filepath.Join(dir, EnvFile))
	switch {
	case err == nil:
		cfg.env = env
	case errors.Is(err, fs.ErrNotExist):
	default:
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
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Get returns a setting from the process environment, falling back to
// EnvFile.
func (c *Config) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return c.env[key]
}

// TasksPath returns the task file to load: --file, then REMIND_TASKS, then
// tasks.yaml in the config directory.
func (c *Config) TasksPath() string {
	if c.File != "" {
		return c.File
	}
	if p := c.Get(EnvTasks); p != "" {
		return p
	}
	return filepath.Join(c.Dir, TasksFile)
}

// ExportList returns the Google Tasks list name configured for exports, or
// "" for the default list.
func (c *Config) ExportList() string {
	return c.Get(EnvList)
}

// Logger returns a logger writing to w when Debug is set, otherwise one
// that discards everything.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if !c.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory with mode 0700 if missing.
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
