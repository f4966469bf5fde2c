// Package introspect scans a Go package for structs annotated with gettergen
// directives and turns them into structural descriptions. It is the upstream
// collaborator of the accessors pipeline: everything it produces is a named
// product, since Go structs cannot express positional fields or sum types.
package introspect

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/gettergen/gettergen/descriptor"
)

// Directive comments:
//
//	//gettergen:type mutable,clone,deref   (doc comment of a struct type)
//	//gettergen:field skip_deref           (doc comment of a field)
//
// A bare //gettergen:type enables ref accessors only. Tokens are not validated
// here; the accessors package reports unknown tokens with full context.
const (
	typeDirective  = "gettergen:type"
	fieldDirective = "gettergen:field"
)

// LoadPackage loads the package at dir and returns a description for every
// annotated struct, in source order. skipFilename names the generated output
// file, which is excluded from the scan so regeneration never feeds on its own
// output. Only syntax is loaded: the scan must work while the generated file
// is missing or stale.
func LoadPackage(dir, skipFilename string) ([]descriptor.TypeDescription, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, dir)
	if err != nil {
		return nil, fmt.Errorf("load package %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("load package %s: no packages matched", dir)
	}

	skipBase := filepath.Base(skipFilename)

	var descs []descriptor.TypeDescription
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			return nil, fmt.Errorf("load package %s: %s", dir, perr.Msg)
		}
		for _, file := range pkg.Syntax {
			name := filepath.Base(pkg.Fset.Position(file.Pos()).Filename)
			if name == skipBase {
				continue
			}
			fileDescs, err := scanFile(pkg.Fset, file)
			if err != nil {
				return nil, err
			}
			descs = append(descs, fileDescs...)
		}
	}
	return descs, nil
}

func scanFile(fset *token.FileSet, file *ast.File) ([]descriptor.TypeDescription, error) {
	var descs []descriptor.TypeDescription
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			tokens, found := directiveTokens(doc, typeDirective)
			if !found {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("type %s: gettergen directive on non-struct type (%s)",
					ts.Name.Name, fset.Position(ts.Pos()))
			}
			fields, err := scanFields(fset, ts.Name.Name, st)
			if err != nil {
				return nil, err
			}
			descs = append(descs, descriptor.TypeDescription{
				Name:     ts.Name.Name,
				Category: descriptor.Product,
				Flags:    tokens,
				Fields:   fields,
			})
		}
	}
	return descs, nil
}

func scanFields(fset *token.FileSet, typeName string, st *ast.StructType) (descriptor.FieldGroup, error) {
	var group descriptor.FieldGroup
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return nil, fmt.Errorf("type %s: embedded fields are not supported (%s)",
				typeName, fset.Position(f.Pos()))
		}
		typeRef, err := typeText(fset, f.Type)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", typeName, err)
		}
		tokens, _ := directiveTokens(f.Doc, fieldDirective)
		// x, y float32 declares two fields sharing type and flags.
		for _, name := range f.Names {
			group = append(group, descriptor.FieldDescription{
				Name:    name.Name,
				TypeRef: typeRef,
				Flags:   tokens,
			})
		}
	}
	return group, nil
}

// typeText renders a field's type expression back to source text. The text is
// passed through to emitted signatures unmodified.
func typeText(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf strings.Builder
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", fmt.Errorf("render type expression: %w", err)
	}
	return buf.String(), nil
}

// directiveTokens extracts the comma-separated token list from the first
// matching directive line of a comment group. The second result reports
// whether the directive was present at all, so a bare directive (no tokens) is
// distinguishable from no directive.
func directiveTokens(doc *ast.CommentGroup, directive string) ([]string, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		line, ok := strings.CutPrefix(c.Text, "//"+directive)
		if !ok {
			continue
		}
		if line != "" && line[0] != ' ' && line[0] != '\t' {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, true
		}
		var tokens []string
		for _, tok := range strings.Split(line, ",") {
			tokens = append(tokens, strings.TrimSpace(tok))
		}
		return tokens, true
	}
	return nil, false
}
