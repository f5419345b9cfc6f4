package render

import (
	"fmt"
	"strings"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// Interfaces emits one structural interface declaration per model.
// Reference fields widen to "string | I<Target>" because a reference may
// appear unpopulated (a plain identifier) or populated (the referenced
// structure).
func Interfaces(schemas map[string]extract.ModelSchema) string {
	var decls []string

	for _, name := range modelNames(schemas) {
		ms := schemas[name]
		var b strings.Builder
		fmt.Fprintf(&b, "export interface I%s {\n", name)

		if ms.IsCircular() {
			b.WriteString("  [key: string]: any; // circular reference\n")
		} else {
			for _, field := range fieldNames(ms.Fields) {
				fi := ms.Fields[field]
				fmt.Fprintf(&b, "  %s%s: %s;\n", memberName(field), optionalMark(fi), tsType(fi))
			}
		}

		b.WriteString("}")
		decls = append(decls, b.String())
	}

	return strings.Join(decls, "\n\n") + "\n"
}

func optionalMark(fi *extract.FieldInfo) string {
	if fi != nil && fi.Required {
		return ""
	}
	return "?"
}

// memberName quotes names that are not valid identifiers (dotted synthetic
// fields).
func memberName(name string) string {
	if strings.ContainsAny(name, ". -") {
		return "'" + name + "'"
	}
	return name
}

// tsType maps a descriptor to its member type.
func tsType(fi *extract.FieldInfo) string {
	t := typeOf(fi)

	if fi != nil && len(fi.Enum) > 0 && (t == extract.TypeString || t == extract.TypeNumber) {
		return enumUnion(fi.Enum)
	}

	switch t {
	case extract.TypeString:
		return "string"
	case extract.TypeNumber:
		return "number"
	case extract.TypeBoolean:
		return "boolean"
	case extract.TypeDate:
		return "Date"
	case extract.TypeDecimal128:
		return "Types.Decimal128"
	case extract.TypeObjectReference:
		if fi.Ref != "" {
			return fmt.Sprintf("string | I%s", fi.Ref)
		}
		return "string"
	case extract.TypeArray:
		return arrayType(fi.Items)
	case extract.TypeObject:
		return objectLiteral(fi)
	case extract.TypeMap:
		if fi.Values != nil {
			return fmt.Sprintf("Record<string, %s>", tsType(fi.Values))
		}
		return "Record<string, any>"
	default:
		// BinaryBuffer, Mixed, Virtual, Circular, unrecognized kinds
		return "any"
	}
}

func enumUnion(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			parts[i] = "'" + s + "'"
		} else {
			parts[i] = formatValue(v)
		}
	}
	return strings.Join(parts, " | ")
}

func arrayType(items *extract.FieldInfo) string {
	if items == nil {
		return "any[]"
	}
	elem := tsType(items)
	if strings.Contains(elem, "|") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}

func objectLiteral(fi *extract.FieldInfo) string {
	if fi.Circular {
		return "any /* circular reference */"
	}
	if len(fi.Properties) == 0 {
		return "Record<string, any>"
	}
	members := make([]string, 0, len(fi.Properties))
	for _, name := range fieldNames(fi.Properties) {
		sub := fi.Properties[name]
		members = append(members, fmt.Sprintf("%s%s: %s", memberName(name), optionalMark(sub), tsType(sub)))
	}
	return "{ " + strings.Join(members, "; ") + " }"
}
