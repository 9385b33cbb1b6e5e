// Package config loads the optional pmprep.yaml configuration file.
// Every field has a sensible default, so a missing file is not an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/session"
)

// Config holds user-tunable settings. Zero values mean "use the default".
type Config struct {
	// BankJSON and BankCSV point at question bank files. The JSON bank is
	// preferred when both exist.
	BankJSON string `yaml:"bank_json"`
	BankCSV  string `yaml:"bank_csv"`

	// Mode is the default session mode, "practice" or "exam".
	Mode string `yaml:"mode"`

	// Size is the default number of questions per session.
	Size int `yaml:"size"`

	// Domains restricts sessions to the named domains. Empty means all.
	Domains []string `yaml:"domains"`

	// Seed pins the shuffle seed when set. Absent means a fresh seed
	// per session.
	Seed *int64 `yaml:"seed"`

	// FullyDeterministic also derives choice order from the seed.
	FullyDeterministic bool `yaml:"fully_deterministic"`

	// FeedbackPauseMs is how long the quiz screen lingers on answer
	// feedback before advancing, in milliseconds.
	FeedbackPauseMs int `yaml:"feedback_pause_ms"`

	// ExportDir is where session exports are written. Empty means the
	// current directory.
	ExportDir string `yaml:"export_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:            string(session.ModePractice),
		Size:            10,
		FeedbackPauseMs: 1200,
	}
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a config document strictly. Unknown keys are an error so
// typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch session.Mode(c.Mode) {
	case session.ModePractice, session.ModeExam:
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.Size < 0 {
		return fmt.Errorf("invalid size %d", c.Size)
	}
	if c.FeedbackPauseMs < 0 {
		return fmt.Errorf("invalid feedback_pause_ms %d", c.FeedbackPauseMs)
	}
	for _, d := range c.Domains {
		if _, ok := bank.ParseDomain(d); !ok {
			return fmt.Errorf("unknown domain %q", d)
		}
	}
	return nil
}

// SessionConfig converts the loaded settings into session start options.
func (c Config) SessionConfig() session.Config {
	sc := session.Config{
		Size:               c.Size,
		Mode:               session.Mode(c.Mode),
		FullyDeterministic: c.FullyDeterministic,
	}
	if c.Seed != nil {
		sc.Seed = *c.Seed
		sc.Seeded = true
	}
	for _, d := range c.Domains {
		if dom, ok := bank.ParseDomain(d); ok {
			sc.Domains = append(sc.Domains, dom)
		}
	}
	return sc
}

// DefaultPath resolves the config file location from PMPREP_CONFIG, then
// XDG_CONFIG_HOME, then ~/.config.
func DefaultPath() string {
	if p := os.Getenv("PMPREP_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "pmprep.yaml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pmprep", "pmprep.yaml")
}
