package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/schema"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func extractUserBlog(t *testing.T) map[string]extract.ModelSchema {
	t.Helper()

	user := schema.New()
	user.Add("username", &schema.FieldType{
		Kind: schema.KindString,
		Options: schema.FieldOptions{
			Required:  true,
			Unique:    true,
			MinLength: intPtr(3),
			MaxLength: intPtr(30),
		},
	})
	user.Add("email", &schema.FieldType{
		Kind:    schema.KindString,
		Options: schema.FieldOptions{Required: true, Unique: true, Lowercase: true},
	})
	user.Add("role", &schema.FieldType{
		Kind:       schema.KindString,
		EnumValues: []interface{}{"user", "admin"},
		Options:    schema.FieldOptions{HasDefault: true, Default: "user"},
	})
	user.Add("posts", &schema.FieldType{
		Kind:   schema.KindArray,
		Caster: &schema.FieldType{Kind: schema.KindObjectID, Options: schema.FieldOptions{Ref: "Post"}},
	})

	post := schema.New()
	post.Add("title", &schema.FieldType{Kind: schema.KindString, Options: schema.FieldOptions{Required: true}})
	post.Add("author", &schema.FieldType{Kind: schema.KindObjectID, Options: schema.FieldOptions{Ref: "User"}})

	reg := schema.NewRegistry()
	reg.Register("User", user)
	reg.Register("Post", post)

	schemas, err := extract.ExtractRegistry(reg, extract.DefaultOptions())
	require.NoError(t, err)
	return schemas
}

// TestCompactUserScenario pins the exact constraint rendering, including
// its fixed ordering, for the canonical blog registry.
func TestCompactUserScenario(t *testing.T) {
	out := Compact(extractUserBlog(t))

	lines := strings.Split(out, "\n")
	var userBlock []string
	inUser := false
	for _, line := range lines {
		if line == "**User**" {
			inUser = true
			continue
		}
		if inUser {
			if line == "" {
				break
			}
			userBlock = append(userBlock, line)
		}
	}
	require.NotEmpty(t, userBlock, "expected a **User** heading")

	assert.Contains(t, userBlock, "- username (String, required, unique, 3-30 chars)")
	assert.Contains(t, userBlock, "- email (String, required, unique, lowercase)")
	assert.Contains(t, userBlock, "- role (String, enum: [user, admin], default: user)")
	assert.Contains(t, userBlock, "- posts (ObjectReference, ref: Post)")

	assert.Contains(t, out, "**Post**")
	assert.Contains(t, out, "- author (ObjectReference, ref: User)")
}

func TestCompactPartialBounds(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"M": {Fields: map[string]*extract.FieldInfo{
			"short": {Type: extract.TypeString, MinLength: intPtr(2)},
			"long":  {Type: extract.TypeString, MaxLength: intPtr(64)},
			"low":   {Type: extract.TypeNumber, Min: floatPtr(5)},
			"high":  {Type: extract.TypeNumber, Max: floatPtr(9.5)},
			"both":  {Type: extract.TypeNumber, Min: floatPtr(0), Max: floatPtr(120)},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, "- short (String, min 2 chars)")
	assert.Contains(t, out, "- long (String, max 64 chars)")
	assert.Contains(t, out, "- low (Number, min 5)")
	assert.Contains(t, out, "- high (Number, max 9.5)")
	assert.Contains(t, out, "- both (Number, 0-120)")
}

func TestCompactFlagsAndPattern(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"M": {Fields: map[string]*extract.FieldInfo{
			"slug": {
				Type:      extract.TypeString,
				Indexed:   true,
				Sparse:    true,
				Immutable: true,
				Pattern:   `^[a-z\\d-]+$`,
			},
			"secret": {Type: extract.TypeString, Select: boolPtr(false)},
			"stamp":  {Type: extract.TypeDate, Auto: true},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, `- slug (String, indexed, pattern: ^[a-z\d-]+$, sparse, immutable)`)
	assert.Contains(t, out, "- secret (String, not selected)")
	assert.Contains(t, out, "- stamp (Date, auto-generated)")
}

// TestCompactEmbeddedObject: direct sub-fields expand one level; deeper
// nesting is summarized.
func TestCompactEmbeddedObject(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"User": {Fields: map[string]*extract.FieldInfo{
			"profile": {
				Type:          extract.TypeObject,
				PropertyCount: 2,
				Properties: map[string]*extract.FieldInfo{
					"bio": {Type: extract.TypeString},
					"address": {
						Type:          extract.TypeObject,
						PropertyCount: 2,
						Properties: map[string]*extract.FieldInfo{
							"street": {Type: extract.TypeString},
							"city":   {Type: extract.TypeString},
						},
					},
				},
			},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, "- profile (Object)")
	assert.Contains(t, out, "    - bio (String)")
	assert.Contains(t, out, "    - address (Object, 2 fields)")
	assert.NotContains(t, out, "street", "second-level nesting is summarized, not expanded")
}

func TestCompactArrayOfObjects(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Order": {Fields: map[string]*extract.FieldInfo{
			"items": {
				Type: extract.TypeArray,
				Items: &extract.FieldInfo{
					Type:          extract.TypeObject,
					PropertyCount: 2,
					Properties: map[string]*extract.FieldInfo{
						"sku": {Type: extract.TypeString, Required: true},
						"qty": {Type: extract.TypeNumber},
					},
				},
			},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, "- items (Array of Object)")
	assert.Contains(t, out, "  Array contains:")
	assert.Contains(t, out, "    - sku (String, required)")
	assert.Contains(t, out, "    - qty (Number)")
}

// TestCompactGroupedFields: dotted synthetic names render under a
// synthesized parent heading.
func TestCompactGroupedFields(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Config": {Fields: map[string]*extract.FieldInfo{
			"smtp.host": {Type: extract.TypeString},
			"smtp.port": {Type: extract.TypeNumber},
			"name":      {Type: extract.TypeString},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, "- name (String)")
	assert.Contains(t, out, "- smtp:")
	assert.Contains(t, out, "    - host (String)")
	assert.Contains(t, out, "    - port (Number)")
}

func TestCompactCircularRoot(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Loop": extract.CircularModelSchema(),
	}

	out := Compact(schemas)
	assert.Contains(t, out, "**Loop**")
	assert.Contains(t, out, "- (circular reference)")
}

func TestCompactMissingType(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"M": {Fields: map[string]*extract.FieldInfo{
			"odd": {},
		}},
	}

	out := Compact(schemas)
	assert.Contains(t, out, "- odd (Mixed)")
}

func TestCompactTrailingWhitespace(t *testing.T) {
	out := Compact(extractUserBlog(t))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.TrimRight(line, " \t"), line)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}
