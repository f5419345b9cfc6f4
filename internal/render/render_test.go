package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"raw", FormatRaw, true},
		{"json", FormatRaw, true},
		{"compact", FormatCompact, true},
		{"prompt", FormatCompact, true},
		{"human", FormatHuman, true},
		{"text", FormatHuman, true},
		{"interface", FormatInterface, true},
		{"ts", FormatInterface, true},
		{"TypeScript", FormatInterface, true},
		{"graphql", FormatGraphQL, true},
		{"gql", FormatGraphQL, true},
		{" compact ", FormatCompact, true},
		{"yaml", FormatRaw, false},
		{"", FormatRaw, false},
	}

	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.in)
		assert.Equal(t, tt.ok, ok, "ParseFormat(%q) ok", tt.in)
	}
}

// Unknown format names fall back to the raw JSON rendering rather than
// failing.
func TestRenderUnknownFormatFallsBack(t *testing.T) {
	schemas := extractUserBlog(t)

	out := Render(Format("bogus"), schemas)
	assert.Equal(t, RawJSON(schemas), out)

	var decoded map[string]map[string]*extract.FieldInfo
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "User")
	assert.Equal(t, "String", decoded["User"]["username"].Type)
}

func TestRawIdentity(t *testing.T) {
	schemas := extractUserBlog(t)
	same := Raw(schemas)

	// Identity, not a copy: programmatic consumers get the mapping itself.
	assert.Equal(t, len(schemas), len(same))
	for name := range schemas {
		_, ok := same[name]
		assert.True(t, ok)
	}
}

func TestRawJSONCircularModel(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Loop": extract.CircularModelSchema(),
	}

	out := RawJSON(schemas)
	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Circular", decoded["Loop"]["type"])
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"raw", "compact", "human", "interface", "graphql"}, Formats())
}

func TestHumanReport(t *testing.T) {
	out := Human(extractUserBlog(t))

	assert.Contains(t, out, "Model: User")
	assert.Contains(t, out, "Field: username")
	assert.Contains(t, out, "  Type: String")
	assert.Contains(t, out, "  Required: yes")
	assert.Contains(t, out, "  Unique: yes")
	assert.Contains(t, out, "  Length: 3-30 chars")
	assert.Contains(t, out, "  Allowed values: user, admin")
	assert.Contains(t, out, "  Default: user")
	assert.Contains(t, out, "  Element type: ObjectReference")
	assert.Contains(t, out, "  Element references: Post")
}

func TestHumanCircularWarnings(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Loop": extract.CircularModelSchema(),
		"Node": {Fields: map[string]*extract.FieldInfo{
			"self": {Type: extract.TypeObject, Circular: true},
		}},
	}

	out := Human(schemas)
	assert.Contains(t, out, "WARNING: circular reference at the model root")
	assert.Contains(t, out, "WARNING: circular reference, nested fields omitted")
}

func TestHumanNestedFieldNames(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"User": {Fields: map[string]*extract.FieldInfo{
			"profile": {
				Type:          extract.TypeObject,
				PropertyCount: 2,
				Properties: map[string]*extract.FieldInfo{
					"bio": {Type: extract.TypeString},
					"age": {Type: extract.TypeNumber},
				},
			},
		}},
	}

	out := Human(schemas)
	assert.Contains(t, out, "  Nested fields: age, bio")
}

func TestHumanSeparatesModels(t *testing.T) {
	out := Human(extractUserBlog(t))
	assert.Equal(t, 1, strings.Count(out, "Model: User"))
	assert.Equal(t, 1, strings.Count(out, "Model: Post"))
}
