// Package render turns extracted model schemas into textual output. Every
// renderer is a pure function of the extracted mapping; none mutate input
// and none fail for well-formed input. Malformed descriptors (e.g. missing
// type) degrade to a fallback token instead of an error.
package render

import (
	"sort"
	"strings"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// Format names the output representation.
type Format string

const (
	FormatRaw       Format = "raw"
	FormatCompact   Format = "compact"
	FormatHuman     Format = "human"
	FormatInterface Format = "interface"
	FormatGraphQL   Format = "graphql"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{
		string(FormatRaw),
		string(FormatCompact),
		string(FormatHuman),
		string(FormatInterface),
		string(FormatGraphQL),
	}
}

// ParseFormat normalizes a format name. Common aliases are accepted.
// Unknown names return FormatRaw and ok=false; callers requesting an
// unsupported format get the JSON-shaped mapping instead of an error.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "json":
		return FormatRaw, true
	case "compact", "prompt":
		return FormatCompact, true
	case "human", "text":
		return FormatHuman, true
	case "interface", "ts", "typescript":
		return FormatInterface, true
	case "graphql", "gql":
		return FormatGraphQL, true
	default:
		return FormatRaw, false
	}
}

// Render produces the output string for the chosen format. Unknown formats
// fall back to the raw JSON rendering.
func Render(f Format, schemas map[string]extract.ModelSchema) string {
	switch f {
	case FormatCompact:
		return Compact(schemas)
	case FormatHuman:
		return Human(schemas)
	case FormatInterface:
		return Interfaces(schemas)
	case FormatGraphQL:
		return GraphQL(schemas)
	default:
		return RawJSON(schemas)
	}
}

// modelNames returns model names in deterministic order. Field order is not
// semantically significant to any consumer, so renderers sort throughout.
func modelNames(schemas map[string]extract.ModelSchema) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fieldNames returns a model's field names in deterministic order.
func fieldNames(fields map[string]*extract.FieldInfo) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// typeOf tolerates descriptors missing their type tag.
func typeOf(fi *extract.FieldInfo) string {
	if fi == nil || fi.Type == "" {
		return extract.TypeMixed
	}
	return fi.Type
}
