package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

// Compact emits the annotated-bullet prompt form: one header per model, one
// line per top-level field with its resolved type label and constraint list.
func Compact(schemas map[string]extract.ModelSchema) string {
	var blocks []string

	for _, name := range modelNames(schemas) {
		ms := schemas[name]
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**\n", name)

		if ms.IsCircular() {
			b.WriteString("- (circular reference)\n")
			blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
			continue
		}

		plain, grouped := splitGroupedFields(ms.Fields)

		for _, field := range plain {
			writeCompactField(&b, field, ms.Fields[field])
		}

		// Dotted field names come from synthetic grouped declarations; they
		// render under a synthesized parent heading.
		for _, parent := range sortedKeys(grouped) {
			fmt.Fprintf(&b, "- %s:\n", parent)
			children := grouped[parent]
			sort.Strings(children)
			for _, child := range children {
				fi := ms.Fields[parent+"."+child]
				fmt.Fprintf(&b, "    - %s (%s)\n", child, compactSignature(fi))
			}
		}

		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// splitGroupedFields separates plain field names from dotted ones.
func splitGroupedFields(fields map[string]*extract.FieldInfo) (plain []string, grouped map[string][]string) {
	grouped = make(map[string][]string)
	for _, name := range fieldNames(fields) {
		if i := strings.Index(name, "."); i > 0 {
			parent, child := name[:i], name[i+1:]
			grouped[parent] = append(grouped[parent], child)
			continue
		}
		plain = append(plain, name)
	}
	return plain, grouped
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeCompactField emits the bullet line for one top-level field, plus the
// one-level expansion of embedded objects and array elements.
func writeCompactField(b *strings.Builder, name string, fi *extract.FieldInfo) {
	fmt.Fprintf(b, "- %s (%s)\n", name, compactSignature(fi))

	switch {
	case typeOf(fi) == extract.TypeObject && len(fi.Properties) > 0:
		for _, sub := range fieldNames(fi.Properties) {
			fmt.Fprintf(b, "    - %s (%s)\n", sub, compactSummary(fi.Properties[sub]))
		}
	case typeOf(fi) == extract.TypeArray && fi.Items != nil &&
		typeOf(fi.Items) == extract.TypeObject && len(fi.Items.Properties) > 0:
		b.WriteString("  Array contains:\n")
		for _, sub := range fieldNames(fi.Items.Properties) {
			fmt.Fprintf(b, "    - %s (%s)\n", sub, compactSummary(fi.Items.Properties[sub]))
		}
	}
}

// compactSignature builds "TypeLabel, constraint, ..., default: x".
func compactSignature(fi *extract.FieldInfo) string {
	parts := []string{compactLabel(fi)}
	parts = append(parts, compactConstraints(fi)...)
	if fi != nil && fi.HasDefault {
		parts = append(parts, "default: "+formatValue(fi.DefaultValue))
	}
	return strings.Join(parts, ", ")
}

// compactSummary is the one-level form used for sub-fields of embedded
// objects: deeper nesting is summarized, not expanded.
func compactSummary(fi *extract.FieldInfo) string {
	if typeOf(fi) == extract.TypeObject && fi.PropertyCount > 0 {
		noun := "fields"
		if fi.PropertyCount == 1 {
			noun = "field"
		}
		return fmt.Sprintf("Object, %d %s", fi.PropertyCount, noun)
	}
	return compactSignature(fi)
}

// compactLabel resolves the type label, special-casing references and arrays.
func compactLabel(fi *extract.FieldInfo) string {
	t := typeOf(fi)

	if t == extract.TypeObjectReference && fi.Ref != "" {
		return fmt.Sprintf("%s, ref: %s", extract.TypeObjectReference, fi.Ref)
	}

	if t == extract.TypeArray {
		items := fi.Items
		if items == nil {
			return "Array of " + extract.TypeMixed
		}
		if typeOf(items) == extract.TypeObjectReference && items.Ref != "" {
			return fmt.Sprintf("%s, ref: %s", extract.TypeObjectReference, items.Ref)
		}
		return "Array of " + typeOf(items)
	}

	return t
}

// compactConstraints assembles the parenthesized constraint list. The order
// is a contract: required, unique, indexed, case/trim flags, length range,
// numeric range, pattern, enum, then the remaining flags.
func compactConstraints(fi *extract.FieldInfo) []string {
	if fi == nil {
		return nil
	}

	var parts []string
	if fi.Required {
		parts = append(parts, "required")
	}
	if fi.Unique {
		parts = append(parts, "unique")
	}
	if fi.Indexed {
		parts = append(parts, "indexed")
	}
	if fi.Lowercase {
		parts = append(parts, "lowercase")
	}
	if fi.Uppercase {
		parts = append(parts, "uppercase")
	}
	if fi.Trim {
		parts = append(parts, "trim")
	}

	if s := lengthRange(fi.MinLength, fi.MaxLength); s != "" {
		parts = append(parts, s)
	}
	if s := numericRange(fi.Min, fi.Max); s != "" {
		parts = append(parts, s)
	}
	if s := dateRange(fi.MinDate, fi.MaxDate); s != "" {
		parts = append(parts, s)
	}

	if fi.Pattern != "" {
		parts = append(parts, "pattern: "+unescapePattern(fi.Pattern))
	}
	if len(fi.Enum) > 0 {
		parts = append(parts, "enum: ["+joinValues(fi.Enum, ", ")+"]")
	}

	if fi.Sparse {
		parts = append(parts, "sparse")
	}
	if fi.Immutable {
		parts = append(parts, "immutable")
	}
	if fi.Select != nil && !*fi.Select {
		parts = append(parts, "not selected")
	}
	if fi.Auto {
		parts = append(parts, "auto-generated")
	}
	if fi.Circular {
		parts = append(parts, "circular reference")
	}
	if fi.Note != "" {
		parts = append(parts, fi.Note)
	}

	return parts
}

// lengthRange combines bounds as "3-30 chars"; a lone bound keeps its name.
func lengthRange(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%d-%d chars", *min, *max)
	case min != nil:
		return fmt.Sprintf("min %d chars", *min)
	case max != nil:
		return fmt.Sprintf("max %d chars", *max)
	}
	return ""
}

func numericRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%s-%s", formatNumber(*min), formatNumber(*max))
	case min != nil:
		return "min " + formatNumber(*min)
	case max != nil:
		return "max " + formatNumber(*max)
	}
	return ""
}

func dateRange(min, max *time.Time) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%s - %s", min.Format("2006-01-02"), max.Format("2006-01-02"))
	case min != nil:
		return "after " + min.Format("2006-01-02")
	case max != nil:
		return "before " + max.Format("2006-01-02")
	}
	return ""
}

// unescapePattern collapses doubled backslashes so patterns read naturally.
func unescapePattern(p string) string {
	return strings.ReplaceAll(p, `\\`, `\`)
}

// formatNumber trims the trailing zeros fmt would print for whole floats.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatValue prints a literal value without quoting strings.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return formatNumber(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// joinValues renders enum members with the given separator.
func joinValues(values []interface{}, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, sep)
}
