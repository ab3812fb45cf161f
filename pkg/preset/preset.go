// Package preset loads and stores command presets.
// A preset is a file overriding command line flags, encoded as JSON or YAML
// depending on its extension.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files with unsupported extension.
var ErrUnknownFormat = errors.New("unknown preset format")

// Format is a preset encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf guesses format from path's extension. Files without extension are JSON.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Unmarshal decodes data into v.
func Unmarshal(format Format, data []byte, v any) error {
	switch format {
	case JSON:
		return json.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Marshal encodes v.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case JSON:
		return json.MarshalIndent(v, "", "\t")
	case YAML:
		return yaml.Marshal(v)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Load reads preset from path into v. Fields missing in the file are left untouched.
func Load(path string, v any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read preset: %w", err)
	}

	if err := Unmarshal(format, data, v); err != nil {
		return fmt.Errorf("cannot parse preset %s: %w", path, err)
	}

	return nil
}
