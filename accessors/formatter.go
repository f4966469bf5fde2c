package accessors

import (
	"fmt"
	"strings"
)

// FormatMethod renders one method definition as Go source.
func FormatMethod(m MethodDef) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("func (t *%s) %s() %s {\n", m.TypeName, m.Name, m.Results))
	for _, line := range m.Body {
		buf.WriteString("\t")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

// FormatMethods renders the full accessor block for a plan, one blank line
// between methods, preserving plan order.
func FormatMethods(specs []AccessorSpec) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, FormatMethod(Emit(s)))
	}
	return strings.Join(parts, "\n")
}
