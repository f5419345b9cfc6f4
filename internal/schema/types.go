// Package schema provides the in-memory descriptor model for document
// collections. It defines field kinds, per-field constraint options, and the
// Schema container that the extractor walks. Schemas are built either
// programmatically (see schema.go) or from a JSON definition file (loader.go).
package schema

import (
	"fmt"
	"time"
)

// FieldKind represents the declared primitive or structural kind of a field.
type FieldKind int

const (
	// Scalar kinds
	KindString FieldKind = iota
	KindNumber
	KindDate
	KindBoolean
	KindObjectID
	KindDecimal128
	KindBuffer
	KindMixed

	// Structural kinds
	KindArray
	KindDocument
	KindMap

	// KindUnrecognized covers kinds the loader could not map. The raw label
	// is preserved on the FieldType so it can be passed through verbatim.
	KindUnrecognized
)

// String returns the canonical label for the field kind.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindDate:
		return "Date"
	case KindBoolean:
		return "Boolean"
	case KindObjectID:
		return "ObjectID"
	case KindDecimal128:
		return "Decimal128"
	case KindBuffer:
		return "Buffer"
	case KindMixed:
		return "Mixed"
	case KindArray:
		return "Array"
	case KindDocument:
		return "Document"
	case KindMap:
		return "Map"
	case KindUnrecognized:
		return "Unrecognized"
	default:
		return "unknown"
	}
}

// ParseFieldKind converts a declared kind label to a FieldKind. It accepts
// the legacy "Oid" spelling for object references. Unknown labels return
// KindUnrecognized and ok=false; callers keep the raw label in that case.
func ParseFieldKind(s string) (FieldKind, bool) {
	switch s {
	case "String":
		return KindString, true
	case "Number":
		return KindNumber, true
	case "Date":
		return KindDate, true
	case "Boolean", "Bool":
		return KindBoolean, true
	case "ObjectID", "ObjectId", "Oid":
		return KindObjectID, true
	case "Decimal128":
		return KindDecimal128, true
	case "Buffer":
		return KindBuffer, true
	case "Mixed":
		return KindMixed, true
	case "Array":
		return KindArray, true
	case "Document", "Embedded", "Object":
		return KindDocument, true
	case "Map":
		return KindMap, true
	default:
		return KindUnrecognized, false
	}
}

// FieldOptions holds the declared constraints for a single field. Pointer
// members distinguish "not declared" from a declared zero value.
type FieldOptions struct {
	Required  bool
	Unique    bool
	Index     bool
	Sparse    bool
	Immutable bool

	// String transforms
	Lowercase bool
	Uppercase bool
	Trim      bool

	// Select controls query projection; only an explicit declaration is
	// carried through extraction, hence the pointer.
	Select *bool

	// Enum as declared at the options level. String and Number fields may
	// also carry resolved EnumValues on the FieldType, which win.
	Enum []interface{}

	// Length bounds for strings
	MinLength *int
	MaxLength *int

	// Numeric bounds
	Min *float64
	Max *float64

	// Date bounds
	MinDate *time.Time
	MaxDate *time.Time

	// Match is a string-encoded validation pattern. MatchMessage holds the
	// message half of a [pattern, message] declaration and is not extracted.
	Match        string
	MatchMessage string

	// Ref names the referenced collection for ObjectID fields (or array
	// casters of ObjectID fields).
	Ref string

	// Default holds a literal default value. DefaultFunc holds a generator;
	// it is never invoked by the extractor, only reduced to a marker.
	Default         interface{}
	HasDefault      bool
	DefaultFunc     func() interface{}
	DefaultFuncName string
}

// ValidatorSpec describes one custom validator attached to a field. The
// function itself is opaque to extraction.
type ValidatorSpec struct {
	Kind    string
	Message string
	Fn      func(interface{}) bool
}

// FieldType is the raw descriptor for one declared field. Exactly one of
// Caster, Schema, ValueType is set, matching the structural kind.
type FieldType struct {
	Kind FieldKind
	Path string

	// RawKind preserves the declared label when Kind is KindUnrecognized.
	RawKind string

	Options FieldOptions

	// EnumValues are the resolved enum members (String/Number fields).
	// They take precedence over Options.Enum.
	EnumValues []interface{}

	// Caster describes the element type of an Array field.
	Caster *FieldType

	// Schema is the embedded sub-schema of a Document field.
	Schema *Schema

	// ValueType describes the value type of a Map field.
	ValueType *FieldType

	Validators []ValidatorSpec
}

// Label returns the declared kind label, preserving unrecognized raw kinds.
func (f *FieldType) Label() string {
	if f.Kind == KindUnrecognized && f.RawKind != "" {
		return f.RawKind
	}
	return f.Kind.String()
}

// Virtual is a derived field computed at access time and never persisted.
// The getter is opaque to extraction.
type Virtual struct {
	Name   string
	Getter func(doc map[string]interface{}) interface{}
}

// TimestampOptions controls automatic createdAt/updatedAt tracking.
// Empty field names fall back to the conventional defaults.
type TimestampOptions struct {
	Enabled   bool
	CreatedAt string
	UpdatedAt string
}

// CreatedField returns the effective created-at field name.
func (t TimestampOptions) CreatedField() string {
	if t.CreatedAt != "" {
		return t.CreatedAt
	}
	return "createdAt"
}

// UpdatedField returns the effective updated-at field name.
func (t TimestampOptions) UpdatedField() string {
	if t.UpdatedAt != "" {
		return t.UpdatedAt
	}
	return "updatedAt"
}

// validateFieldType checks the structural invariant that exactly the nested
// shape matching the kind is populated.
func validateFieldType(name string, f *FieldType) error {
	if f == nil {
		return fmt.Errorf("field %s has no descriptor", name)
	}
	switch f.Kind {
	case KindArray:
		if f.Schema != nil || f.ValueType != nil {
			return fmt.Errorf("array field %s must only carry an element caster", name)
		}
	case KindDocument:
		if f.Caster != nil || f.ValueType != nil {
			return fmt.Errorf("document field %s must only carry an embedded schema", name)
		}
	case KindMap:
		if f.Caster != nil || f.Schema != nil {
			return fmt.Errorf("map field %s must only carry a value type", name)
		}
	default:
		if f.Caster != nil || f.Schema != nil || f.ValueType != nil {
			return fmt.Errorf("scalar field %s must not carry a nested shape", name)
		}
	}
	return nil
}
