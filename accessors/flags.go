// Package accessors turns a structural type description into a deterministic
// list of accessor method definitions. The pipeline is flags (annotation
// resolution) → classifier (field-group shape) → plan (one spec per enabled
// field/kind pair) → names (method identifiers) → emitter (method bodies).
package accessors

import (
	"errors"
	"fmt"
)

// Kind is one of the four ways a stored field can be exposed.
type Kind uint8

const (
	KindRef Kind = iota
	KindMut
	KindClone
	KindDeref
)

// kindOrder is the fixed emission order within one field.
var kindOrder = [...]Kind{KindRef, KindMut, KindClone, KindDeref}

// Suffix returns the method-name suffix for the kind.
func (k Kind) Suffix() string {
	switch k {
	case KindRef:
		return "ref"
	case KindMut:
		return "mut"
	case KindClone:
		return "clone"
	case KindDeref:
		return "deref"
	}
	return "unknown"
}

func (k Kind) String() string { return k.Suffix() }

// ErrUnknownFlag reports an annotation token that is not part of the
// configuration surface. It is always wrapped with the type (and field or
// variant) the token was attached to.
var ErrUnknownFlag = errors.New("unknown getters flag")

// TypeConfig holds the type-level defaults. The ref kind has no type-level
// token: it is implicitly enabled and only a field-level skip turns it off.
type TypeConfig struct {
	Mutable bool
	Clone   bool
	Deref   bool
}

// ParseTypeFlags parses the type-level token list (mutable, clone, deref).
func ParseTypeFlags(typeName string, tokens []string) (TypeConfig, error) {
	var tc TypeConfig
	for _, tok := range tokens {
		switch tok {
		case "mutable":
			tc.Mutable = true
		case "clone":
			tc.Clone = true
		case "deref":
			tc.Deref = true
		default:
			return TypeConfig{}, fmt.Errorf("type %s: %w: %q", typeName, ErrUnknownFlag, tok)
		}
	}
	return tc, nil
}

// fieldFlags is the parsed, unresolved field-level annotation. Enables and
// skips are tracked separately because skips take precedence regardless of the
// order the tokens were written in.
type fieldFlags struct {
	mutable bool
	clone   bool
	deref   bool

	skipAll   bool
	skipMut   bool
	skipClone bool
	skipDeref bool
}

// parseFieldFlags parses the field-level token list: the three enable tokens
// plus skip, skip_mutable, skip_clone, skip_deref.
func parseFieldFlags(typeName, fieldName string, tokens []string) (fieldFlags, error) {
	var ff fieldFlags
	for _, tok := range tokens {
		switch tok {
		case "mutable":
			ff.mutable = true
		case "clone":
			ff.clone = true
		case "deref":
			ff.deref = true
		case "skip":
			ff.skipAll = true
		case "skip_mutable":
			ff.skipMut = true
		case "skip_clone":
			ff.skipClone = true
		case "skip_deref":
			ff.skipDeref = true
		default:
			return fieldFlags{}, fmt.Errorf("type %s, field %s: %w: %q", typeName, fieldName, ErrUnknownFlag, tok)
		}
	}
	return ff, nil
}

// variantFlags masks accessor kinds for every field of one sum variant.
type variantFlags struct {
	skipAll   bool
	skipMut   bool
	skipClone bool
	skipDeref bool
}

// parseVariantFlags parses the variant-level token list, which only admits the
// skip forms.
func parseVariantFlags(typeName, variantName string, tokens []string) (variantFlags, error) {
	var vf variantFlags
	for _, tok := range tokens {
		switch tok {
		case "skip":
			vf.skipAll = true
		case "skip_mutable":
			vf.skipMut = true
		case "skip_clone":
			vf.skipClone = true
		case "skip_deref":
			vf.skipDeref = true
		default:
			return variantFlags{}, fmt.Errorf("type %s, variant %s: %w: %q", typeName, variantName, ErrUnknownFlag, tok)
		}
	}
	return vf, nil
}

// FieldConfig is the fully resolved per-field configuration: every kind is a
// concrete boolean, nothing is inherited anymore.
type FieldConfig struct {
	Ref     bool
	Mutable bool
	Clone   bool
	Deref   bool
}

// Enabled reports whether the given kind survived resolution.
func (fc FieldConfig) Enabled(k Kind) bool {
	switch k {
	case KindRef:
		return fc.Ref
	case KindMut:
		return fc.Mutable
	case KindClone:
		return fc.Clone
	case KindDeref:
		return fc.Deref
	}
	return false
}

// resolve applies the precedence chain: field skip-all beats field skip-kind
// beats field enable beats the type-level default. Variant skips mask the
// result for every field of the variant.
func resolve(tc TypeConfig, ff fieldFlags, vf variantFlags) FieldConfig {
	if ff.skipAll || vf.skipAll {
		return FieldConfig{}
	}
	return FieldConfig{
		Ref:     true,
		Mutable: (ff.mutable || tc.Mutable) && !ff.skipMut && !vf.skipMut,
		Clone:   (ff.clone || tc.Clone) && !ff.skipClone && !vf.skipClone,
		Deref:   (ff.deref || tc.Deref) && !ff.skipDeref && !vf.skipDeref,
	}
}
