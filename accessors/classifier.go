package accessors

import (
	"errors"
	"fmt"

	"github.com/gettergen/gettergen/descriptor"
)

// Shape describes how a field group stores and addresses its fields.
type Shape uint8

const (
	// ShapeNamed: every field has a declared identifier.
	ShapeNamed Shape = iota
	// ShapePositional: ordered, unnamed fields addressed by index.
	ShapePositional
	// ShapeSingleWrapped: exactly one unnamed field (newtype).
	ShapeSingleWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	case ShapeSingleWrapped:
		return "single-wrapped"
	}
	return "unknown"
}

// ErrEmptyFieldGroup reports a field group with zero fields requesting
// accessors.
var ErrEmptyFieldGroup = errors.New("field group has no fields")

// ErrMixedFieldGroup reports a field group mixing named and unnamed fields,
// which no supported structural shape can represent.
var ErrMixedFieldGroup = errors.New("field group mixes named and unnamed fields")

// Classify tags a field group as named, positional, or single-wrapped.
func Classify(g descriptor.FieldGroup) (Shape, error) {
	if len(g) == 0 {
		return 0, ErrEmptyFieldGroup
	}
	named := 0
	for _, f := range g {
		if f.Name != "" {
			named++
		}
	}
	switch {
	case named == len(g):
		return ShapeNamed, nil
	case named > 0:
		return 0, fmt.Errorf("%w: %d of %d named", ErrMixedFieldGroup, named, len(g))
	case len(g) == 1:
		return ShapeSingleWrapped, nil
	default:
		return ShapePositional, nil
	}
}
