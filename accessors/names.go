package accessors

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

// ErrNameCollision reports two accessor specs resolving to the same method
// identifier within one type.
var ErrNameCollision = errors.New("accessor name collision")

// ResolveNames assigns the method identifier for every spec in place and
// enforces uniqueness within the type. Names follow the fixed surface:
//
//	product:  <field>_<kind>
//	sum:      <variant_snake>_<field>_<kind>
//
// Field names are snake-cased so exported Go identifiers (Name) and declared
// snake names (name) land on the same surface. Variants are always prefixed,
// even when only one variant declares the field: the same field name may recur
// across variants and every occurrence is an independent method.
func ResolveNames(specs []AccessorSpec) error {
	seen := make(map[string]AccessorSpec, len(specs))
	for i := range specs {
		s := &specs[i]
		name := strcase.ToSnake(s.FieldName) + "_" + s.Kind.Suffix()
		if s.Variant != "" {
			name = strcase.ToSnake(s.Variant) + "_" + name
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q produced by both %s and %s",
				ErrNameCollision, name, prev.location(), s.location())
		}
		seen[name] = *s
		s.Name = name
	}
	return nil
}
