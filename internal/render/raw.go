package render

import (
	"encoding/json"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// Raw is the identity renderer for programmatic consumers: the extracted
// mapping is returned unchanged.
func Raw(schemas map[string]extract.ModelSchema) map[string]extract.ModelSchema {
	return schemas
}

// RawJSON serializes the extracted mapping as indented JSON. It is also the
// fallback for unknown format names.
func RawJSON(schemas map[string]extract.ModelSchema) string {
	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		// The mapping is built from JSON-safe values; this is unreachable for
		// extractor output, but renderers never fail.
		return "{}"
	}
	return string(data) + "\n"
}
