package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"mvdan.cc/sh/v3/shell"
)

const FileName = "lspcheck.toml"

type Config struct {
	LogLevel    string   `toml:"log_level"`
	LogFile     string   `toml:"log_file"`
	Color       string   `toml:"color"`
	Jobs        int      `toml:"jobs"`
	ExcludeDirs []string `toml:"exclude_dirs"`
	Check       Check    `toml:"check"`
}

type Check struct {
	Drift         bool     `toml:"drift"`
	IgnoreMethods []string `toml:"ignore_methods"`
}

var (
	LogLevels   = []string{"debug", "info", "warn", "error"}
	ColorModes  = []string{"auto", "always", "never"}
	ErrNotFound = errors.New("config file not found")
)

func Default() Config {
	return Config{
		LogLevel:    "info",
		Color:       "auto",
		ExcludeDirs: []string{".git", ".venv", "node_modules"},
		Check: Check{
			Drift: true,
		},
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	expanded, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%s: %w", expanded, ErrNotFound)
	}
	meta, err := toml.DecodeFile(expanded, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", expanded, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", expanded, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", expanded, err)
	}
	if cfg.LogFile != "" {
		if cfg.LogFile, err = ExpandPath(cfg.LogFile); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Find returns the config file in dir or the user config directory, or
// ErrNotFound.
func Find(dir string) (string, error) {
	candidates := []string{filepath.Join(dir, FileName)}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, "lspcheck", FileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", ErrNotFound
}

func (c Config) Validate() error {
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(LogLevels, ", "), c.LogLevel)
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("color must be one of %s, got %q", strings.Join(ColorModes, ", "), c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// ExpandPath expands a leading ~ and shell variables such as $HOME or
// ${XDG_STATE_HOME} in path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	expanded, err := shell.Expand(path, os.Getenv)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return expanded, nil
}
