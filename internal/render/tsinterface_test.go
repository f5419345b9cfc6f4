package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
)

func TestInterfacesUserScenario(t *testing.T) {
	out := Interfaces(extractUserBlog(t))

	assert.Contains(t, out, "export interface IUser {")
	assert.Contains(t, out, "export interface IPost {")
	assert.Contains(t, out, "  username: string;")
	assert.Contains(t, out, "  role?: 'user' | 'admin';")
	assert.Contains(t, out, "  posts?: (string | IPost)[];")
	assert.Contains(t, out, "  author?: string | IUser;")
}

func TestInterfacesTypeMapping(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"M": {Fields: map[string]*extract.FieldInfo{
			"s":   {Type: extract.TypeString, Required: true},
			"n":   {Type: extract.TypeNumber},
			"b":   {Type: extract.TypeBoolean},
			"d":   {Type: extract.TypeDate},
			"dec": {Type: extract.TypeDecimal128},
			"buf": {Type: extract.TypeBinaryBuffer},
			"mix": {Type: extract.TypeMixed},
			"v":   {Type: extract.TypeVirtual, Computed: true},
			"ref": {Type: extract.TypeObjectReference},
		}},
	}

	out := Interfaces(schemas)
	assert.Contains(t, out, "  s: string;")
	assert.Contains(t, out, "  n?: number;")
	assert.Contains(t, out, "  b?: boolean;")
	assert.Contains(t, out, "  d?: Date;")
	assert.Contains(t, out, "  dec?: Types.Decimal128;")
	assert.Contains(t, out, "  buf?: any;")
	assert.Contains(t, out, "  mix?: any;")
	assert.Contains(t, out, "  v?: any;")
	assert.Contains(t, out, "  ref?: string;")
}

func TestInterfacesEmbeddedAndMap(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"User": {Fields: map[string]*extract.FieldInfo{
			"profile": {
				Type:          extract.TypeObject,
				PropertyCount: 2,
				Properties: map[string]*extract.FieldInfo{
					"bio": {Type: extract.TypeString},
					"age": {Type: extract.TypeNumber, Required: true},
				},
			},
			"meta": {
				Type:   extract.TypeMap,
				Values: &extract.FieldInfo{Type: extract.TypeString},
			},
			"loop": {Type: extract.TypeObject, Circular: true},
		}},
	}

	out := Interfaces(schemas)
	assert.Contains(t, out, "  profile?: { age: number; bio?: string };")
	assert.Contains(t, out, "  meta?: Record<string, string>;")
	assert.Contains(t, out, "  loop?: any /* circular reference */;")
}

func TestInterfacesCircularModel(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"Loop": extract.CircularModelSchema(),
	}

	out := Interfaces(schemas)
	assert.Contains(t, out, "export interface ILoop {")
	assert.Contains(t, out, "  [key: string]: any; // circular reference")
}

func TestInterfacesNumberEnum(t *testing.T) {
	schemas := map[string]extract.ModelSchema{
		"M": {Fields: map[string]*extract.FieldInfo{
			"level": {Type: extract.TypeNumber, Enum: []interface{}{1.0, 2.0, 3.0}},
		}},
	}

	out := Interfaces(schemas)
	assert.Contains(t, out, "  level?: 1 | 2 | 3;")
}
