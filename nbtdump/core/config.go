package core

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults the CLI applies when the corresponding flag is
// not given. All fields are optional; the zero config is valid.
type Config struct {
	Format   string `yaml:"format,omitempty"`    // text, json, cbor or msgpack
	Strict   bool   `yaml:"strict,omitempty"`    // propagate top-level decode errors
	MaxDepth int    `yaml:"max_depth,omitempty"` // nesting limit, 0 = library default
}

// LoadConfig reads a YAML config file. An empty path yields the zero
// config; unknown fields in the file are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
