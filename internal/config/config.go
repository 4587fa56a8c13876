// Package config parses declarative label documents.
//
// A document carries two top-level sequences: labels (desired end-state
// declarations, processed in document order) and delete (plain names to
// remove). Both YAML and TOML spellings of the same schema are accepted;
// the format is chosen by file extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Declaration is one desired end-state label entry.
type Declaration struct {
	// Name is the desired final label name. Required.
	Name string `yaml:"name" toml:"name"`

	// Color is the 6-digit hex color. Optional: a declaration without a
	// color expresses update-only intent against an existing label.
	Color string `yaml:"color" toml:"color"`

	// Description is optional. A nil description leaves the remote
	// description untouched.
	Description *string `yaml:"description" toml:"description"`

	// UpdateIfMatch lists existing label names to rename into Name,
	// tried in order.
	UpdateIfMatch []string `yaml:"update_if_match" toml:"update_if_match"`

	// SkipIfExists skips the declaration instead of failing when the
	// name is already taken.
	SkipIfExists bool `yaml:"skip_if_exists" toml:"skip_if_exists"`

	// UpdateIfExists updates the existing label in place when the name
	// is already taken. Takes precedence over SkipIfExists.
	UpdateIfExists bool `yaml:"update_if_exists" toml:"update_if_exists"`
}

// HasColor reports whether the declaration carries a color.
func (d Declaration) HasColor() bool {
	return d.Color != ""
}

// Config is a parsed label document.
type Config struct {
	// Description is optional document metadata. Template files use it
	// for their listing entry; it has no effect on reconciliation.
	Description string `yaml:"description" toml:"description"`

	Labels []Declaration `yaml:"labels" toml:"labels"`
	Delete []string      `yaml:"delete" toml:"delete"`
}

// HasActions reports whether the document declares any work. An empty
// document is valid and treated as a no-op by callers.
func (c *Config) HasActions() bool {
	return len(c.Labels) > 0 || len(c.Delete) > 0
}

// Format identifies the serialization of a label document.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath picks the document format from a file extension.
// Anything that is not .toml is parsed as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and parses the label document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidConfigError{Path: path, Reason: "cannot read file", Err: err}
	}

	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		var invalid *InvalidConfigError
		if errors.As(err, &invalid) {
			invalid.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Decode parses a label document from raw bytes.
func Decode(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, &InvalidConfigError{Reason: "malformed document", Err: err}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	for i, decl := range cfg.Labels {
		if decl.Name == "" {
			return &InvalidConfigError{
				Reason: fmt.Sprintf("labels[%d] is missing the required name field", i),
			}
		}
	}
	return nil
}

// DefaultDocuments lists the file names probed, in order, when the caller
// does not name a document explicitly.
var DefaultDocuments = []string{"labels.yaml", "labels.yml", "labels.toml"}

// ResolveDefault returns the first default document present in dir.
func ResolveDefault(dir string) (string, error) {
	for _, name := range DefaultDocuments {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &InvalidConfigError{
		Path:   dir,
		Reason: fmt.Sprintf("no label document found (looked for %s)", strings.Join(DefaultDocuments, ", ")),
	}
}
