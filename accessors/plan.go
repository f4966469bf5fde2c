package accessors

import (
	"fmt"

	"github.com/gettergen/gettergen/descriptor"
)

// AccessorSpec is one fully resolved unit of work: a single method to
// synthesize for one field and one kind. Specs are produced in a fixed order
// (variant order, field order, kind order) so regeneration from an unchanged
// description is byte-identical.
type AccessorSpec struct {
	TypeName string
	// Variant is the owning variant's declared name; empty for products. Sum
	// accessors are methods on the whole type, the variant only contributes
	// the name prefix and the presence guard.
	Variant string
	Field   descriptor.FieldDescription
	// FieldName is the shape-resolved base name: the declared identifier for
	// named fields, field_<index> for positional fields, value for
	// single-wrapped fields.
	FieldName string
	Kind      Kind
	// Wrapped is set for sum types: the accessor result carries
	// present/absent semantics because the field only exists while its
	// variant is active.
	Wrapped bool

	// Name is the final method identifier, assigned by ResolveNames.
	Name string
}

// location renders the spec's origin for error messages.
func (s AccessorSpec) location() string {
	if s.Variant != "" {
		return fmt.Sprintf("%s::%s.%s", s.TypeName, s.Variant, s.FieldName)
	}
	return fmt.Sprintf("%s.%s", s.TypeName, s.FieldName)
}

// BuildPlan walks a type description and produces the ordered accessor specs
// for every field and enabled kind. For sums, unit variants contribute no
// specs; every other variant's group is planned exactly like a product group,
// with the variant's skip flags masked in.
func BuildPlan(t descriptor.TypeDescription) ([]AccessorSpec, error) {
	tc, err := ParseTypeFlags(t.Name, t.Flags)
	if err != nil {
		return nil, err
	}

	var specs []AccessorSpec
	switch t.Category {
	case descriptor.Product:
		specs, err = planGroup(specs, t, "", t.Fields, tc, variantFlags{})
		if err != nil {
			return nil, err
		}
	case descriptor.Sum:
		for _, v := range t.Variants {
			vf, err := parseVariantFlags(t.Name, v.Name, v.Flags)
			if err != nil {
				return nil, err
			}
			if len(v.Fields) == 0 {
				// Unit variant: legal, nothing to expose.
				continue
			}
			specs, err = planGroup(specs, t, v.Name, v.Fields, tc, vf)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("type %s: unsupported category %q", t.Name, t.Category)
	}
	return specs, nil
}

func planGroup(specs []AccessorSpec, t descriptor.TypeDescription, variant string, g descriptor.FieldGroup, tc TypeConfig, vf variantFlags) ([]AccessorSpec, error) {
	shape, err := Classify(g)
	if err != nil {
		if variant != "" {
			return nil, fmt.Errorf("type %s, variant %s: %w", t.Name, variant, err)
		}
		return nil, fmt.Errorf("type %s: %w", t.Name, err)
	}

	for i, f := range g {
		name := FieldName(f, i, shape)
		ff, err := parseFieldFlags(t.Name, name, f.Flags)
		if err != nil {
			return nil, err
		}
		fc := resolve(tc, ff, vf)
		for _, k := range kindOrder {
			if !fc.Enabled(k) {
				continue
			}
			specs = append(specs, AccessorSpec{
				TypeName:  t.Name,
				Variant:   variant,
				Field:     f,
				FieldName: name,
				Kind:      k,
				Wrapped:   t.Category == descriptor.Sum,
			})
		}
	}
	return specs, nil
}

// FieldName derives the shape-dependent base name for accessors and for
// synthesized declarations: the declared identifier for named fields,
// field_<index> for positional fields, value for single-wrapped fields.
func FieldName(f descriptor.FieldDescription, index int, shape Shape) string {
	switch shape {
	case ShapeSingleWrapped:
		return "value"
	case ShapePositional:
		return fmt.Sprintf("field_%d", index)
	default:
		return f.Name
	}
}
