// Package codegen runs the generation passes and assembles the output file.
package codegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/imports"

	"github.com/gettergen/gettergen/accessors"
	"github.com/gettergen/gettergen/config"
	"github.com/gettergen/gettergen/descriptor"
	"github.com/gettergen/gettergen/introspect"
)

const header = "// Code generated by gettergen. DO NOT EDIT.\n\n"

// Generator produces the accessor file for one config.
type Generator struct {
	cfg *config.GettergenConfig
}

func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg.Gettergen}
}

// Generate renders the accessor file and writes it to the configured output
// path, formatted through goimports. Nothing is written when any type's pass
// fails.
func (g *Generator) Generate() error {
	src, err := g.Render()
	if err != nil {
		return err
	}

	filename := g.cfg.Output.Filename
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("generated", "file", filename)
	return nil
}

// Check regenerates in memory and compares against the file on disk. It
// returns a non-nil error when the file is missing or stale, printing a diff
// for the latter; nothing is written.
func (g *Generator) Check() error {
	src, err := g.Render()
	if err != nil {
		return err
	}

	filename := g.cfg.Output.Filename
	existing, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read existing output: %w", err)
	}
	if string(existing) == src {
		log.Info("up to date", "file", filename)
		return nil
	}

	fmt.Print(unifiedDiff(string(existing), src))
	return fmt.Errorf("%s is out of date, rerun gettergen", filename)
}

// Render produces the complete, goimports-formatted output file: declared
// types in config order, then introspected types in source order. Each type
// generates independently; a failing type is reported and the remaining types
// still run, but a run with any failure produces no output.
func (g *Generator) Render() (string, error) {
	descs, err := g.descriptions()
	if err != nil {
		return "", err
	}
	if len(descs) == 0 {
		return "", errors.New("nothing to generate: no declared types and no annotated structs")
	}

	var (
		blocks []string
		errs   []error
	)
	for _, d := range descs {
		block, err := renderType(d)
		if err != nil {
			log.Error("generation failed", "type", d.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		blocks = append(blocks, block)
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}

	src := header + "package " + g.cfg.Output.Package + "\n\n" + strings.Join(blocks, "\n")
	formatted, err := imports.Process(g.cfg.Output.Filename, []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf("goimports: %w", err)
	}
	return string(formatted), nil
}

func (g *Generator) descriptions() ([]descriptor.TypeDescription, error) {
	descs := g.cfg.TypeDescriptions()
	if g.cfg.Source != nil {
		scanned, err := introspect.LoadPackage(g.cfg.Source.Package, g.cfg.Output.Filename)
		if err != nil {
			return nil, err
		}
		descs = append(descs, scanned...)
	}
	return descs, nil
}

// renderType runs the full pipeline for one type: plan, name resolution, and
// emission, preceded by the synthesized declaration for declared types.
func renderType(t descriptor.TypeDescription) (string, error) {
	specs, err := accessors.BuildPlan(t)
	if err != nil {
		return "", err
	}
	if err := accessors.ResolveNames(specs); err != nil {
		return "", fmt.Errorf("type %s: %w", t.Name, err)
	}
	log.Debug("planned accessors", "type", t.Name, "methods", len(specs))

	var parts []string
	if t.Declared {
		decl, err := formatTypeDecl(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, decl)
	}
	if len(specs) > 0 {
		parts = append(parts, accessors.FormatMethods(specs))
	}
	return strings.Join(parts, "\n"), nil
}
