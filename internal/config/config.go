package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rogersnm/taskpad/internal/model"
	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

type Config struct {
	// DefaultFile is the task file used when no --file flag or repo link applies.
	DefaultFile string `yaml:"default_file,omitempty"`
	// DefaultSort is the sort key applied by list when --sort is not given.
	DefaultSort string `yaml:"default_sort,omitempty"`
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultSort, validation.By(sortKey)),
	)
}

// sortKey accepts the same words as list --sort.
func sortKey(value interface{}) error {
	s, _ := value.(string)
	_, err := model.ParseSortKey(s)
	return err
}

var setters = map[string]func(*Config, string){
	"default_file": func(c *Config, v string) { c.DefaultFile = v },
	"default_sort": func(c *Config, v string) { c.DefaultSort = v },
}

// Keys returns the settable config keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to key and validates the result. On error c is unchanged.
func (c *Config) Set(key, value string) error {
	fn, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	next := *c
	fn(&next, value)
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, FileName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
