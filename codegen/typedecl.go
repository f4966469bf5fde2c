package codegen

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/gettergen/gettergen/accessors"
	"github.com/gettergen/gettergen/descriptor"
)

// formatTypeDecl synthesizes the declaration block for a config-declared type:
// the type itself plus one constructor per variant (or one for a product).
// Introspected types never reach here, their declarations already exist in
// source.
func formatTypeDecl(t descriptor.TypeDescription) (string, error) {
	if t.Category == descriptor.Sum {
		return formatSumDecl(t)
	}
	return formatProductDecl(t)
}

func formatProductDecl(t descriptor.TypeDescription) (string, error) {
	shape, err := accessors.Classify(t.Fields)
	if err != nil {
		return "", fmt.Errorf("type %s: %w", t.Name, err)
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("type %s struct {\n", t.Name))
	for i, f := range t.Fields {
		buf.WriteString(fmt.Sprintf("\t%s %s\n", accessors.FieldName(f, i, shape), f.TypeRef))
	}
	buf.WriteString("}\n\n")

	buf.WriteString(formatConstructor("New"+strcase.ToCamel(t.Name), t.Name, "", t.Fields, shape))
	return buf.String(), nil
}

func formatSumDecl(t descriptor.TypeDescription) (string, error) {
	kindType := accessors.UnionKindType(t.Name)

	// Every variant synthesizes a kind constant and a constructor regardless of
	// whether it carries fields, so uniqueness must be enforced here: unit
	// variants produce no accessors and never reach the name resolver.
	seen := make(map[string]string, len(t.Variants))
	for _, v := range t.Variants {
		kc := accessors.UnionKindConst(t.Name, v.Name)
		if prev, ok := seen[kc]; ok {
			return "", fmt.Errorf("type %s: %w: %q produced by both variant %s and variant %s",
				t.Name, accessors.ErrNameCollision, kc, prev, v.Name)
		}
		seen[kc] = v.Name
	}

	var buf strings.Builder

	// Kind tag. The zero value means "no variant", so a zero-valued union
	// answers absent to every accessor.
	buf.WriteString(fmt.Sprintf("type %s uint8\n\n", kindType))
	buf.WriteString("const (\n")
	for i, v := range t.Variants {
		if i == 0 {
			buf.WriteString(fmt.Sprintf("\t%s %s = iota + 1\n", accessors.UnionKindConst(t.Name, v.Name), kindType))
		} else {
			buf.WriteString(fmt.Sprintf("\t%s\n", accessors.UnionKindConst(t.Name, v.Name)))
		}
	}
	buf.WriteString(")\n\n")

	// Payload structs, skipping unit variants.
	shapes := make(map[string]accessors.Shape, len(t.Variants))
	for _, v := range t.Variants {
		if len(v.Fields) == 0 {
			continue
		}
		shape, err := accessors.Classify(v.Fields)
		if err != nil {
			return "", fmt.Errorf("type %s, variant %s: %w", t.Name, v.Name, err)
		}
		shapes[v.Name] = shape
		buf.WriteString(fmt.Sprintf("type %s struct {\n", accessors.UnionPayloadType(t.Name, v.Name)))
		for i, f := range v.Fields {
			buf.WriteString(fmt.Sprintf("\t%s %s\n", accessors.FieldName(f, i, shape), f.TypeRef))
		}
		buf.WriteString("}\n\n")
	}

	// The union itself.
	buf.WriteString(fmt.Sprintf("type %s struct {\n", t.Name))
	buf.WriteString(fmt.Sprintf("\tkind %s\n", kindType))
	for _, v := range t.Variants {
		if len(v.Fields) == 0 {
			continue
		}
		buf.WriteString(fmt.Sprintf("\t%s %s\n", accessors.UnionSelector(v.Name), accessors.UnionPayloadType(t.Name, v.Name)))
	}
	buf.WriteString("}\n\n")

	// One constructor per variant, in declaration order.
	ctors := make([]string, 0, len(t.Variants))
	for _, v := range t.Variants {
		name := "New" + strcase.ToCamel(t.Name) + strcase.ToCamel(v.Name)
		ctors = append(ctors, formatConstructor(name, t.Name, v.Name, v.Fields, shapes[v.Name]))
	}
	buf.WriteString(strings.Join(ctors, "\n"))
	return buf.String(), nil
}

// formatConstructor renders a constructor taking every field in declaration
// order. For a sum variant it sets the kind tag and fills the variant's
// payload; a unit variant only sets the tag.
func formatConstructor(name, typeName, variant string, fields descriptor.FieldGroup, shape accessors.Shape) string {
	params := make([]string, 0, len(fields))
	inits := make([]string, 0, len(fields))
	for i, f := range fields {
		fn := accessors.FieldName(f, i, shape)
		params = append(params, fn+" "+f.TypeRef)
		inits = append(inits, fn+": "+fn)
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("func %s(%s) %s {\n", name, strings.Join(params, ", "), typeName))
	if variant == "" {
		buf.WriteString(fmt.Sprintf("\treturn %s{%s}\n", typeName, strings.Join(inits, ", ")))
	} else if len(fields) == 0 {
		buf.WriteString(fmt.Sprintf("\treturn %s{kind: %s}\n", typeName, accessors.UnionKindConst(typeName, variant)))
	} else {
		buf.WriteString(fmt.Sprintf("\treturn %s{kind: %s, %s: %s{%s}}\n",
			typeName,
			accessors.UnionKindConst(typeName, variant),
			accessors.UnionSelector(variant),
			accessors.UnionPayloadType(typeName, variant),
			strings.Join(inits, ", ")))
	}
	buf.WriteString("}\n")
	return buf.String()
}
