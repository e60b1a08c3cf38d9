package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used when encoding configuration.
const yamlIndent = 2

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
// Fields missing from data are left at their zero value, not defaulted.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Puzzles == nil {
		cfg.Puzzles = make(map[string]PuzzleConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		InputDir:     c.InputDir,
		InputPattern: c.InputPattern,
		LogLevel:     c.LogLevel,
		Format:       c.Format,
		Jobs:         c.Jobs,
		SkipMissing:  c.SkipMissing,
	}

	if c.Puzzles != nil {
		clone.Puzzles = make(map[string]PuzzleConfig, len(c.Puzzles))
		for id, pc := range c.Puzzles {
			clone.Puzzles[id] = pc.clone()
		}
	}

	return clone
}

func (pc PuzzleConfig) clone() PuzzleConfig {
	clone := PuzzleConfig{}

	if pc.Enabled != nil {
		enabled := *pc.Enabled
		clone.Enabled = &enabled
	}

	if pc.Input != nil {
		input := *pc.Input
		clone.Input = &input
	}

	return clone
}
