package codepage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// ParseYAML reads a table description in YAML.
func ParseYAML(d []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(d, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTable, err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTOML reads a table description in TOML.
func ParseTOML(d []byte) (*Table, error) {
	t := &Table{}
	if err := toml.Unmarshal(d, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTable, err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a table, choosing the format from the file extension.
func LoadFile(path string) (*Table, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(d)
	case ".toml":
		return ParseTOML(d)
	default:
		return nil, fmt.Errorf("%w: unknown format for %s", ErrTable, path)
	}
}
