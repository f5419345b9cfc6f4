package render

import (
	"fmt"
	"strings"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// Human emits the verbose multi-line report, one stanza per field. It is
// meant for direct reading rather than prompt embedding.
func Human(schemas map[string]extract.ModelSchema) string {
	var b strings.Builder

	for i, name := range modelNames(schemas) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Model: %s\n", name)
		b.WriteString(strings.Repeat("=", len("Model: ")+len(name)) + "\n")

		ms := schemas[name]
		if ms.IsCircular() {
			b.WriteString("  WARNING: circular reference at the model root; fields omitted\n")
			continue
		}

		for _, field := range fieldNames(ms.Fields) {
			writeHumanField(&b, field, ms.Fields[field])
		}
	}

	return b.String()
}

func writeHumanField(b *strings.Builder, name string, fi *extract.FieldInfo) {
	fmt.Fprintf(b, "\nField: %s\n", name)
	fmt.Fprintf(b, "  Type: %s\n", typeOf(fi))
	if fi == nil {
		return
	}

	if fi.Required {
		b.WriteString("  Required: yes\n")
	}
	if fi.Unique {
		b.WriteString("  Unique: yes\n")
	}
	if fi.Indexed {
		b.WriteString("  Indexed: yes\n")
	}
	if fi.Ref != "" {
		fmt.Fprintf(b, "  References: %s\n", fi.Ref)
	}
	if len(fi.Enum) > 0 {
		fmt.Fprintf(b, "  Allowed values: %s\n", joinValues(fi.Enum, ", "))
	}
	if s := lengthRange(fi.MinLength, fi.MaxLength); s != "" {
		fmt.Fprintf(b, "  Length: %s\n", s)
	}
	if s := numericRange(fi.Min, fi.Max); s != "" {
		fmt.Fprintf(b, "  Range: %s\n", s)
	}
	if s := dateRange(fi.MinDate, fi.MaxDate); s != "" {
		fmt.Fprintf(b, "  Date range: %s\n", s)
	}
	if fi.Pattern != "" {
		fmt.Fprintf(b, "  Pattern: %s\n", unescapePattern(fi.Pattern))
	}
	if fi.HasDefault {
		fmt.Fprintf(b, "  Default: %s\n", formatValue(fi.DefaultValue))
	}
	if fi.HasValidators {
		fmt.Fprintf(b, "  Custom validators: %d\n", fi.ValidatorCount)
	}

	if fi.Items != nil {
		fmt.Fprintf(b, "  Element type: %s\n", typeOf(fi.Items))
		if fi.Items.Ref != "" {
			fmt.Fprintf(b, "  Element references: %s\n", fi.Items.Ref)
		}
	}
	if len(fi.Properties) > 0 {
		fmt.Fprintf(b, "  Nested fields: %s\n", strings.Join(fieldNames(fi.Properties), ", "))
	}
	if fi.Values != nil {
		fmt.Fprintf(b, "  Value type: %s\n", typeOf(fi.Values))
	}

	if fi.Circular {
		b.WriteString("  WARNING: circular reference, nested fields omitted\n")
	}
	if fi.Computed {
		b.WriteString("  Computed: yes (virtual, not stored)\n")
	}
	if fi.Auto {
		b.WriteString("  Auto-generated: yes\n")
	}
	if fi.Note != "" {
		fmt.Fprintf(b, "  Note: %s\n", fi.Note)
	}
}
