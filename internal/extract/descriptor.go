// Package extract implements the schema walker: it converts registered
// collection models into plain nested field-descriptor mappings that the
// render package turns into text. Extraction is synchronous, allocation-only
// work over already-resident descriptors; it never mutates its input.
package extract

import (
	"encoding/json"
	"time"
)

// Extracted type labels. The walker normalizes declared kinds onto this
// closed set; unrecognized declared kinds pass through verbatim instead.
const (
	TypeString          = "String"
	TypeNumber          = "Number"
	TypeDate            = "Date"
	TypeBoolean         = "Boolean"
	TypeObjectReference = "ObjectReference"
	TypeDecimal128      = "Decimal128"
	TypeBinaryBuffer    = "BinaryBuffer"
	TypeMixed           = "Mixed"
	TypeArray           = "Array"
	TypeObject          = "Object"
	TypeMap             = "Map"
	TypeVirtual         = "Virtual"
	TypeCircular        = "Circular"
)

// NoteMaxDepth marks a field truncated by the depth bound.
const NoteMaxDepth = "max depth reached"

// ValidatorInfo describes one custom validator. The function body is never
// serialized; only an opaque marker survives extraction.
type ValidatorInfo struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Validator string `json:"validator,omitempty"`
}

// FieldInfo is the normalized descriptor for one extracted field. Exactly
// one of Items, Properties, Values is populated, matching Type.
type FieldInfo struct {
	Type string `json:"type"`
	Note string `json:"note,omitempty"`

	Required  bool  `json:"required,omitempty"`
	Unique    bool  `json:"unique,omitempty"`
	Indexed   bool  `json:"indexed,omitempty"`
	Sparse    bool  `json:"sparse,omitempty"`
	Immutable bool  `json:"immutable,omitempty"`
	Lowercase bool  `json:"lowercase,omitempty"`
	Uppercase bool  `json:"uppercase,omitempty"`
	Trim      bool  `json:"trim,omitempty"`
	Select    *bool `json:"select,omitempty"`

	Enum      []interface{} `json:"enum,omitempty"`
	EnumCount int           `json:"enumCount,omitempty"`

	MinLength *int       `json:"minLength,omitempty"`
	MaxLength *int       `json:"maxLength,omitempty"`
	Min       *float64   `json:"min,omitempty"`
	Max       *float64   `json:"max,omitempty"`
	MinDate   *time.Time `json:"minDate,omitempty"`
	MaxDate   *time.Time `json:"maxDate,omitempty"`

	Pattern string `json:"pattern,omitempty"`
	Ref     string `json:"ref,omitempty"`

	HasDefault   bool        `json:"hasDefault,omitempty"`
	DefaultValue interface{} `json:"defaultValue,omitempty"`

	HasValidators  bool            `json:"hasValidators,omitempty"`
	Validators     []ValidatorInfo `json:"validators,omitempty"`
	ValidatorCount int             `json:"validatorCount,omitempty"`

	Items         *FieldInfo            `json:"items,omitempty"`
	Properties    map[string]*FieldInfo `json:"properties,omitempty"`
	PropertyCount int                   `json:"propertyCount,omitempty"`
	Values        *FieldInfo            `json:"values,omitempty"`

	Circular bool `json:"circular,omitempty"`
	Computed bool `json:"computed,omitempty"`
	Auto     bool `json:"auto,omitempty"`
}

// ModelSchema is the plain mapping of field name to descriptor for one
// model. A model whose root schema was already visited degrades to the
// Circular marker with no fields.
type ModelSchema struct {
	Fields map[string]*FieldInfo

	// circular is set only when the root schema itself was already visited.
	circular bool
}

// CircularModelSchema returns the marker produced for a root-level cycle.
func CircularModelSchema() ModelSchema {
	return ModelSchema{circular: true}
}

// IsCircular reports whether this model degraded to the Circular marker.
func (m ModelSchema) IsCircular() bool {
	return m.circular
}

// MarshalJSON serializes the field mapping, or {"type": "Circular"} for a
// root-level cycle, matching the shape programmatic consumers receive.
func (m ModelSchema) MarshalJSON() ([]byte, error) {
	if m.circular {
		return json.Marshal(map[string]string{"type": TypeCircular})
	}
	return json.Marshal(m.Fields)
}
