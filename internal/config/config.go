// Package config loads .retval.toml settings for the report command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Discover.
const FileName = ".retval.toml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownColor  = errors.New("unknown color mode")
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrNegativeJobs  = errors.New("jobs must not be negative")
)

// Config holds settings of the report command.
type Config struct {
	Format string   `toml:"format"`
	Color  string   `toml:"color"`
	Funcs  []string `toml:"funcs"` // additional must-use functions, pkg/path.Func or pkg/path.Type.Method
	Jobs   int      `toml:"jobs"`  // 0 means GOMAXPROCS
	Tests  bool     `toml:"tests"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Format: FormatText,
		Color:  ColorAuto,
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	if !slices.Contains([]string{ColorAuto, ColorOn, ColorOff}, c.Color) {
		return fmt.Errorf("%w: %q", ErrUnknownColor, c.Color)
	}

	if c.Jobs < 0 {
		return ErrNegativeJobs
	}

	return nil
}

// FuncList returns Funcs joined in the comma-separated flag form.
func (c *Config) FuncList() string {
	return strings.Join(c.Funcs, ",")
}

// Discover walks up the directory tree from startDir looking for a
// .retval.toml file. It stops at a directory containing .git or at the
// filesystem root. Returns "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
