package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = ".contactbook.yaml"
	DefaultDatabase = "contacts/contacts.db"
)

// Config holds the settings read from .contactbook.yaml or .contactbook.toml.
type Config struct {
	Database string `yaml:"database" toml:"database"`
	Verbose  bool   `yaml:"verbose" toml:"verbose"`
}

func Default() *Config {
	return &Config{Database: DefaultDatabase}
}

// Load reads the config file at path, choosing the format by extension.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, cfg)
	case ".toml":
		err = toml.Unmarshal(content, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	return cfg, nil
}

// Write stores cfg at path in the format its extension names.
func Write(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
