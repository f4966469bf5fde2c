// Package config loads and validates the gettergen config file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/gettergen/gettergen/descriptor"
)

// Config represents the config file.
type Config struct {
	Gettergen *GettergenConfig `yaml:"gettergen" validate:"required"`
}

// GettergenConfig is the tool's own section: where to read descriptions from
// and where the generated file goes.
type GettergenConfig struct {
	Source   *SourceConfig  `yaml:"source,omitempty"`
	Output   OutputConfig   `yaml:"output" validate:"required"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Types    []TypeDecl     `yaml:"types,omitempty" validate:"dive"`
}

// SourceConfig points at the Go package scanned for directive-annotated
// structs.
type SourceConfig struct {
	Package string `yaml:"package" validate:"required"`
}

// OutputConfig locates the generated file.
type OutputConfig struct {
	Filename string `yaml:"filename" validate:"required"`
	Package  string `yaml:"package" validate:"required"`
}

// DefaultsConfig holds type-level tokens applied to every declared type that
// does not carry its own getters list.
type DefaultsConfig struct {
	Getters []string `yaml:"getters,omitempty"`
}

// TypeDecl is a type declared directly in the config file. Declared types are
// synthesized into the output alongside their accessors; this is the only way
// to get sum types and positional shapes, which Go source cannot express.
type TypeDecl struct {
	Name     string        `yaml:"name" validate:"required"`
	Category string        `yaml:"category" validate:"required,oneof=product sum"`
	Getters  []string      `yaml:"getters,omitempty"`
	Fields   []FieldDecl   `yaml:"fields,omitempty" validate:"dive"`
	Variants []VariantDecl `yaml:"variants,omitempty" validate:"dive"`
}

// VariantDecl is one alternative of a declared sum type. A variant without
// fields is a unit variant.
type VariantDecl struct {
	Name   string      `yaml:"name" validate:"required"`
	Flags  []string    `yaml:"flags,omitempty"`
	Fields []FieldDecl `yaml:"fields,omitempty" validate:"dive"`
}

// FieldDecl is one declared field. Entries without a name make the group
// positional (or single-wrapped when the group has exactly one entry).
type FieldDecl struct {
	Name  string   `yaml:"name,omitempty"`
	Type  string   `yaml:"type" validate:"required"`
	Flags []string `yaml:"flags,omitempty"`
}

// FindConfigFile returns the first existing candidate config file in dir.
func FindConfigFile(dir string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no config file found in %s (tried %s)", dir, strings.Join(candidates, ", "))
}

// Load reads, parses, and validates the config file. Unknown YAML keys are
// errors, and environment variables in the file are expanded before decoding.
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(content)))), yaml.DisallowUnknownField())
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if c.Gettergen.Source == nil && len(c.Gettergen.Types) == 0 {
		return nil, errors.New("neither 'source' nor 'types' specified. Use source to scan a Go package for directives, use types to declare types in the config")
	}

	for i := range c.Gettergen.Types {
		if err := c.Gettergen.Types[i].check(); err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
	}

	if err := c.Gettergen.applyDefaults(); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	return &c, nil
}

// check enforces the structural constraints a validate tag cannot express.
func (t *TypeDecl) check() error {
	switch t.Category {
	case "product":
		if len(t.Variants) > 0 {
			return fmt.Errorf("product type %s must not declare variants", t.Name)
		}
		if len(t.Fields) == 0 {
			return fmt.Errorf("product type %s declares no fields", t.Name)
		}
	case "sum":
		if len(t.Fields) > 0 {
			return fmt.Errorf("sum type %s must declare fields under its variants", t.Name)
		}
		if len(t.Variants) == 0 {
			return fmt.Errorf("sum type %s declares no variants", t.Name)
		}
	}
	return nil
}

// applyDefaults merges the defaults section into every declared type that
// leaves the corresponding setting empty.
func (g *GettergenConfig) applyDefaults() error {
	if len(g.Defaults.Getters) == 0 {
		return nil
	}
	base := TypeDecl{Getters: slices.Clone(g.Defaults.Getters)}
	for i := range g.Types {
		if err := mergo.Merge(&g.Types[i], base); err != nil {
			return fmt.Errorf("type %s: %w", g.Types[i].Name, err)
		}
	}
	return nil
}

// TypeDescriptions maps the declared types into the structural model the
// generator consumes, preserving declaration order.
func (g *GettergenConfig) TypeDescriptions() []descriptor.TypeDescription {
	descs := make([]descriptor.TypeDescription, 0, len(g.Types))
	for _, t := range g.Types {
		d := descriptor.TypeDescription{
			Name:     t.Name,
			Category: descriptor.Category(t.Category),
			Flags:    t.Getters,
			Fields:   fieldGroup(t.Fields),
			Declared: true,
		}
		for _, v := range t.Variants {
			d.Variants = append(d.Variants, descriptor.Variant{
				Name:   v.Name,
				Flags:  v.Flags,
				Fields: fieldGroup(v.Fields),
			})
		}
		descs = append(descs, d)
	}
	return descs
}

func fieldGroup(fields []FieldDecl) descriptor.FieldGroup {
	g := make(descriptor.FieldGroup, 0, len(fields))
	for _, f := range fields {
		g = append(g, descriptor.FieldDescription{
			Name:    f.Name,
			TypeRef: f.Type,
			Flags:   f.Flags,
		})
	}
	return g
}
