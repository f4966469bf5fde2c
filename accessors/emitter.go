package accessors

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Union naming: the tagged-union representation of a sum type is a struct with
// an unexported kind tag and one unexported payload struct per variant. The
// emitter and the declaration synthesizer must agree on these names, so they
// are defined once here.

// UnionKindType returns the name of a sum type's kind tag type.
func UnionKindType(typeName string) string {
	return strcase.ToLowerCamel(typeName) + "Kind"
}

// UnionKindConst returns the kind constant identifying a variant.
func UnionKindConst(typeName, variant string) string {
	return UnionKindType(typeName) + strcase.ToCamel(variant)
}

// UnionPayloadType returns the name of a variant's payload struct.
func UnionPayloadType(typeName, variant string) string {
	return strcase.ToLowerCamel(typeName) + strcase.ToCamel(variant)
}

// UnionSelector returns the field selector holding a variant's payload.
func UnionSelector(variant string) string {
	return strcase.ToSnake(variant)
}

// MethodDef is one synthesized method, ready for formatting. The receiver
// variable is always t, matching the rest of the generated surface.
type MethodDef struct {
	TypeName string
	Name     string
	Results  string
	Body     []string
}

// Emit turns a resolved spec into a concrete method definition.
//
// Return shapes: ref and mut yield *T (Go has no read-only reference, the two
// kinds stay distinct methods with identical shape); clone yields T by value
// copy; deref yields the pointed-to type for a *P field and a value copy
// otherwise. Sum accessors wrap the result in present/absent form: nil for
// ref/mut, a (value, bool) pair for clone/deref. The wrapping depends only on
// the type category, never on the kind.
func Emit(s AccessorSpec) MethodDef {
	fieldType := s.Field.TypeRef
	resultType := fieldType
	deref := ""
	if s.Kind == KindDeref {
		if elem, ok := strings.CutPrefix(fieldType, "*"); ok {
			resultType = elem
			deref = "*"
		}
	}

	sel := "t." + s.FieldName
	if s.Variant != "" {
		sel = "t." + UnionSelector(s.Variant) + "." + s.FieldName
	}

	m := MethodDef{
		TypeName: s.TypeName,
		Name:     s.Name,
	}

	byRef := s.Kind == KindRef || s.Kind == KindMut
	if byRef {
		m.Results = "*" + fieldType
	} else {
		m.Results = resultType
	}

	if !s.Wrapped {
		if byRef {
			m.Body = []string{"return &" + sel}
		} else {
			m.Body = []string{"return " + deref + sel}
		}
		return m
	}

	// Sum: single-arm guard on the owning variant's kind tag.
	guard := fmt.Sprintf("if t.kind != %s {", UnionKindConst(s.TypeName, s.Variant))
	if byRef {
		m.Body = []string{
			guard,
			"\treturn nil",
			"}",
			"return &" + sel,
		}
		return m
	}

	m.Results = "(" + resultType + ", bool)"
	m.Body = []string{
		guard,
		"\tvar zero " + resultType,
		"\treturn zero, false",
		"}",
		"return " + deref + sel + ", true",
	}
	return m
}
