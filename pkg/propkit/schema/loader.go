package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk representation of a declaration catalog.
type catalogFile struct {
	Properties []Definition `yaml:"properties" json:"properties"`
}

// FromFile loads a declaration catalog from a file, auto-detecting format
// by extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a declaration catalog.
func FromYAML(data []byte) (*Definitions, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return New(file.Properties)
}

// FromJSON parses JSON data into a declaration catalog.
func FromJSON(data []byte) (*Definitions, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return New(file.Properties)
}
