package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// GraphQL emits one object type per model. Custom scalars used by the
// output are declared up front.
func GraphQL(schemas map[string]extract.ModelSchema) string {
	scalars := make(map[string]struct{})
	var types []string

	for _, name := range modelNames(schemas) {
		ms := schemas[name]
		var b strings.Builder
		fmt.Fprintf(&b, "type %s {\n", name)

		if ms.IsCircular() {
			scalars["JSON"] = struct{}{}
			b.WriteString("  _circular: JSON\n")
		} else {
			for _, field := range fieldNames(ms.Fields) {
				fi := ms.Fields[field]
				gql := gqlType(fi, scalars)
				if fi != nil && fi.Required {
					gql += "!"
				}
				fmt.Fprintf(&b, "  %s: %s\n", gqlFieldName(field), gql)
			}
		}

		b.WriteString("}")
		types = append(types, b.String())
	}

	var b strings.Builder
	for _, s := range sortedScalars(scalars) {
		fmt.Fprintf(&b, "scalar %s\n", s)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(types, "\n\n") + "\n")
	return b.String()
}

// gqlFieldName sanitizes dotted synthetic names into valid GraphQL names.
func gqlFieldName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

func gqlType(fi *extract.FieldInfo, scalars map[string]struct{}) string {
	switch typeOf(fi) {
	case extract.TypeString:
		return "String"
	case extract.TypeNumber:
		return "Float"
	case extract.TypeBoolean:
		return "Boolean"
	case extract.TypeDate:
		scalars["DateTime"] = struct{}{}
		return "DateTime"
	case extract.TypeDecimal128:
		scalars["Decimal"] = struct{}{}
		return "Decimal"
	case extract.TypeObjectReference:
		if fi.Ref != "" {
			return fi.Ref
		}
		return "ID"
	case extract.TypeArray:
		if fi.Items == nil {
			scalars["JSON"] = struct{}{}
			return "[JSON]"
		}
		return "[" + gqlType(fi.Items, scalars) + "]"
	default:
		// Object, Map, BinaryBuffer, Mixed, Virtual, circular fields, and
		// unrecognized kinds all degrade to the JSON scalar.
		scalars["JSON"] = struct{}{}
		return "JSON"
	}
}

func sortedScalars(scalars map[string]struct{}) []string {
	out := make([]string, 0, len(scalars))
	for s := range scalars {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
