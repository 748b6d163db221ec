// Package config собирает настройки клиента из .env, окружения и флагов.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Переменные окружения
const (
	EnvServer      = "VCRESOLVE_SERVER"
	EnvDB          = "VCRESOLVE_DB"
	EnvLogLevel    = "VCRESOLVE_LOG_LEVEL"
	EnvGit         = "VCRESOLVE_GIT"
	EnvTempDir     = "VCRESOLVE_TEMP_DIR"
	EnvConcurrency = "VCRESOLVE_CONCURRENCY"
	EnvUser        = "VCRESOLVE_USER"
)

const (
	DefaultServerURL   = "http://localhost:8080"
	DefaultDBPath      = "vcresolve-client.db"
	DefaultLogLevel    = "info"
	DefaultGitPath     = "git"
	DefaultConcurrency = 4
)

// Config настройки клиента
type Config struct {
	ServerURL   string
	DBPath      string
	LogLevel    string
	GitPath     string
	TempDir     string
	User        string
	Concurrency int
	ShowVersion bool
}

// Load reads .env files (missing ones are skipped), then the environment, then
// flags from args. Flags win over the environment. Returns the remaining args.
func Load(args []string, envFiles ...string) (*Config, []string, error) {
	for _, f := range envFiles {
		// godotenv не перезаписывает уже заданные переменные окружения
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		ServerURL:   envOr(EnvServer, DefaultServerURL),
		DBPath:      envOr(EnvDB, DefaultDBPath),
		LogLevel:    envOr(EnvLogLevel, DefaultLogLevel),
		GitPath:     envOr(EnvGit, DefaultGitPath),
		TempDir:     os.Getenv(EnvTempDir),
		User:        envOr(EnvUser, os.Getenv("USER")),
		Concurrency: DefaultConcurrency,
	}

	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid %s: %w", EnvConcurrency, err)
		}
		cfg.Concurrency = n
	}

	fset := flag.NewFlagSet("vcresolve", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fset.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local database")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fset.StringVar(&cfg.GitPath, "git", cfg.GitPath, "Path to git used for content merges")
	fset.StringVar(&cfg.TempDir, "temp-dir", cfg.TempDir, "Directory for merge temporary files")
	fset.StringVar(&cfg.User, "user", cfg.User, "Current user name, used to display shelveset owners")
	fset.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Number of conflicts triaged in parallel")

	if err := fset.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fset.Args(), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// SlogLevel returns the configured level; Validate guarantees it parses.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}
