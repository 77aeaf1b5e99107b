package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomekjarosik/tildesweep/pkg/sweep"
)

// EnvVar names the environment variable pointing at a defaults file.
const EnvVar = "TILDESWEEP_CONFIG"

// Config holds defaults for the command line flags. Unset fields keep the
// built-in defaults.
type Config struct {
	Recursive   *bool `yaml:"recursive"`
	Verbose     *bool `yaml:"verbose"`
	Interactive *bool `yaml:"interactive"`
	Level       *int  `yaml:"level"`
}

var errNegativeLevel = errors.New("level cannot be negative")

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Level != nil && *c.Level < 0 {
		return errNegativeLevel
	}
	return nil
}

// Apply copies every value set in the file onto opts.
func (c *Config) Apply(opts *sweep.Options) {
	if c.Recursive != nil {
		opts.Recursive = *c.Recursive
	}
	if c.Verbose != nil {
		opts.Verbose = *c.Verbose
	}
	if c.Interactive != nil {
		opts.Confirm = *c.Interactive
	}
	if c.Level != nil {
		opts.MaxDepth = uint(*c.Level)
	}
}
