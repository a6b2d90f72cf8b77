package toolset

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed toolset.yaml
var defaultToolsetBytes []byte

// Default returns the embedded Supabase toolset declaration.
func Default() (*Toolset, error) {
	return Parse(defaultToolsetBytes)
}

// Parse unmarshals a toolset manifest from YAML. It checks only that the
// document decodes and declares at least one tool; call Validate for full
// schema validation.
func Parse(data []byte) (*Toolset, error) {
	var ts Toolset
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parsing toolset: %w", err)
	}
	if len(ts.Tools) == 0 {
		return nil, fmt.Errorf("toolset declares no tools")
	}
	return &ts, nil
}

// ParseFile reads and parses a toolset manifest.
func ParseFile(path string) (*Toolset, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	ts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// Load validates and parses a toolset manifest file. Schema violations are
// returned as an error listing each issue.
func Load(path string) (*Toolset, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s: %s", path, result.Summary())
	}

	ts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
