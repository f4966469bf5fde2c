// Package descriptor defines the structural description of a type that accessor
// generation consumes. Descriptions are produced by an upstream source (the Go
// package scanner in introspect, or declared types from the config file) and are
// immutable for the duration of a generation pass.
package descriptor

// Category distinguishes product types (one fixed field set) from sum types
// (exactly one of several variants at a time).
type Category string

const (
	Product Category = "product"
	Sum     Category = "sum"
)

// TypeDescription is the subject of one generation pass.
//
// A Product owns exactly one FieldGroup and Variants is empty. A Sum owns an
// ordered list of Variants, each with its own FieldGroup, and Fields is unused.
type TypeDescription struct {
	Name     string
	Category Category
	Flags    []string // type-level annotation tokens (mutable, clone, deref)
	Fields   FieldGroup
	Variants []Variant

	// Declared is true when the type itself must be synthesized into the
	// output (config-declared types). Introspected types already exist in
	// source and only receive accessors.
	Declared bool
}

// Variant is one alternative of a Sum type. A variant with an empty FieldGroup
// is a unit variant: legal, but it contributes no accessors.
type Variant struct {
	Name   string
	Flags  []string // variant-level skip tokens
	Fields FieldGroup
}

// FieldGroup is an ordered list of fields. Whether the group is named,
// positional, or single-wrapped is not stored here; the classifier derives it
// from the presence of declared names.
type FieldGroup []FieldDescription

// FieldDescription describes one stored field. TypeRef is the Go type as source
// text and is passed through to emitted signatures unmodified. Name is empty
// for positional fields.
type FieldDescription struct {
	Name    string
	TypeRef string
	Flags   []string // field-level annotation tokens
}
