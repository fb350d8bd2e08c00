// Package config loads the settings of the sexpfmt command from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr/parser"
)

// Config holds the settings of a run.
type Config struct {
	// MaxDepth is the parser nesting limit. Zero selects the parser default;
	// a negative value removes the limit.
	MaxDepth int `yaml:"max_depth"`

	// Workers is the number of inputs processed at the same time.
	Workers int `yaml:"workers"`

	// All makes every input a sequence of expressions instead of a single
	// one.
	All bool `yaml:"all"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxDepth: parser.DefaultMaxDepth,
		Workers:  4,
	}
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration from r on top of Default. Unknown keys are an
// error. An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is like Decode but reads from a byte slice.
func Parse(in []byte) (Config, error) {
	return Decode(bytes.NewReader(in))
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ParserOptions returns the parser options for c.
func (c Config) ParserOptions() parser.ParserOptions {
	return parser.ParserOptions{MaxDepth: c.MaxDepth}
}
