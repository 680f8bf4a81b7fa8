/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/attrindex/attrpath"
	"github.com/suparena/attrindex/errors"
)

// Format is the encoding of a schema document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Attribute describes one attribute name of a schema
type Attribute struct {
	// Name is the dotted attribute name, e.g. "wallet.balance".
	Name string `yaml:"name" toml:"name"`
	// Description is free text for documentation.
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	// Format optionally names a strfmt format (e.g. "date-time") the values are expected to follow.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Schema is a set of attribute names to bind into an index
type Schema struct {
	Attributes []Attribute `yaml:"attributes" toml:"attributes"`
}

// Binder is satisfied by *attrindex.Index
type Binder interface {
	Bind(name string) bool
}

// FormatFromPath infers the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.NewValidationError("path", fmt.Sprintf("unsupported schema file extension %q", filepath.Ext(path)))
	}
}

// Load reads and validates the schema file at path
func Load(path string) (*Schema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a schema document
func Parse(data []byte, format Format) (*Schema, error) {
	var s Schema

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewValidationError(undecoded[0].String(), "unknown field")
		}
	default:
		return nil, errors.NewValidationError("format", fmt.Sprintf("unsupported format %q", format))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every name is a well-formed path, that no name repeats,
// and that every format is known to strfmt.
func (s *Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Attributes))

	for i, attr := range s.Attributes {
		field := fmt.Sprintf("attributes[%d]", i)

		if err := ValidateName(attr.Name); err != nil {
			return errors.NewValidationError(field, err.Error())
		}
		if _, dup := seen[attr.Name]; dup {
			return errors.NewValidationError(field, fmt.Sprintf("duplicate attribute %q", attr.Name))
		}
		seen[attr.Name] = struct{}{}

		if attr.Format != "" && !strfmt.Default.ContainsName(attr.Format) {
			return errors.NewValidationError(field, fmt.Sprintf("unknown format %q for attribute %q", attr.Format, attr.Name))
		}
	}
	return nil
}

// ValidateName rejects empty names and names with empty path segments
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty attribute name")
	}
	for _, seg := range attrpath.Split(name) {
		if seg == "" {
			return fmt.Errorf("attribute name %q has an empty path segment", name)
		}
	}
	return nil
}

// Names returns the attribute names in declaration order
func (s *Schema) Names() []string {
	names := make([]string, len(s.Attributes))
	for i, attr := range s.Attributes {
		names[i] = attr.Name
	}
	return names
}

// Apply binds every attribute of the schema and returns how many were newly bound
func (s *Schema) Apply(b Binder) int {
	n := 0
	for _, attr := range s.Attributes {
		if b.Bind(attr.Name) {
			n++
		}
	}
	return n
}
