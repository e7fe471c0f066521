package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSizeKB is the rotation threshold applied when no size is given.
	DefaultSizeKB = 10240
	// MaxKeep is the largest allowed retention count.
	MaxKeep = 999
)

// Config is the validated runtime configuration handed to the engine.
type Config struct {
	Dir           string
	Prefix        string
	SizeKB        int
	Keep          int
	RotateOnStart bool
	MetricsAddr   string
}

// MaxSizeBytes converts the configured threshold to bytes.
func (c *Config) MaxSizeBytes() int64 {
	return int64(c.SizeKB) * 1024
}

// Validate checks the CLI constraints and makes sure the log directory
// exists, creating it when necessary.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("log directory not specified")
	}
	if strings.TrimSpace(c.Prefix) == "" {
		return errors.New("prefix must not be empty")
	}
	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmt.Errorf("prefix %q must not contain path separators", c.Prefix)
	}
	if c.SizeKB <= 0 {
		return errors.New("size must be a positive number of KB")
	}
	if c.Keep < 0 || c.Keep > MaxKeep {
		return fmt.Errorf("keep must be between 0 and %d", MaxKeep)
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to find or create directory %q: %w", c.Dir, err)
	}
	return nil
}

// FileConfig models the optional YAML configuration file.
type FileConfig struct {
	Journal JournalSettings `yaml:"journal"`
	Server  ServerSettings  `yaml:"server"`
}

// JournalSettings mirrors the journal flags.
type JournalSettings struct {
	Dir           string `yaml:"dir"`
	Prefix        string `yaml:"prefix"`
	SizeKB        int    `yaml:"sizeKB"`
	Keep          int    `yaml:"keep"`
	RotateOnStart bool   `yaml:"rotateOnStart"`
}

// ServerSettings contains the optional operational HTTP listener.
type ServerSettings struct {
	MetricsAddr string `yaml:"metricsAddr"`
}

// Load parses a YAML configuration file from disk.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (f *FileConfig) applyDefaults() {
	if f.Journal.SizeKB == 0 {
		f.Journal.SizeKB = DefaultSizeKB
	}
	f.Journal.Dir = strings.TrimSpace(f.Journal.Dir)
	f.Journal.Prefix = strings.TrimSpace(f.Journal.Prefix)
	f.Server.MetricsAddr = strings.TrimSpace(f.Server.MetricsAddr)
}
