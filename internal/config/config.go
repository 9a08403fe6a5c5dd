package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a marquee session.
// Values are populated from .marquee.yaml, MARQUEE_* env vars, and CLI flags.
type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	DataDir string `mapstructure:"data_dir"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("api_key", "")
	viper.SetDefault("base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Reload re-reads the config file and returns the resulting Config. Used by
// the watcher after an edit; falls back to current viper state when the file
// cannot be re-read.
func Reload() Config {
	_ = viper.ReadInConfig()
	return Load()
}

// defaultDataDir returns ~/.marquee, falling back to the working directory
// when the home directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".marquee"
	}
	return filepath.Join(home, ".marquee")
}

// DatabasePath returns the path of the SQLite store inside the data dir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "marquee.db")
}

// SessionLogPath returns the path of the JSONL session log inside the data dir.
func (c Config) SessionLogPath() string {
	return filepath.Join(c.DataDir, "session.jsonl")
}
