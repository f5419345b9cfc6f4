package schema

import (
	"fmt"

	"github.com/google/uuid"
)

// Reserved bookkeeping fields maintained by the persistence layer. The
// version key is never extracted; the id key is extracted unless excluded.
const (
	VersionKey = "__v"
	IDKey      = "_id"
)

// Schema is the field-descriptor registry for one collection. Field order
// follows declaration order. Every Schema carries a UUID assigned at
// construction; the extractor's visited set is keyed on it.
type Schema struct {
	ID uuid.UUID

	fields map[string]*FieldType
	order  []string

	Virtuals   []Virtual
	Timestamps TimestampOptions
}

// New creates an empty Schema with a fresh identity.
func New() *Schema {
	return &Schema{
		ID:     uuid.New(),
		fields: make(map[string]*FieldType),
	}
}

// Add declares a field. Re-declaring a name replaces the previous
// descriptor but keeps its position. Returns the schema for chaining.
func (s *Schema) Add(name string, f *FieldType) *Schema {
	if err := validateFieldType(name, f); err != nil {
		// Structural misdeclarations are a programming error in the caller;
		// surface them loudly rather than producing a half-built schema.
		panic(err)
	}
	f.Path = name
	if _, exists := s.fields[name]; !exists {
		s.order = append(s.order, name)
	}
	s.fields[name] = f
	return s
}

// AddVirtual declares a derived field.
func (s *Schema) AddVirtual(v Virtual) *Schema {
	s.Virtuals = append(s.Virtuals, v)
	return s
}

// WithTimestamps enables automatic timestamp tracking with default names.
func (s *Schema) WithTimestamps() *Schema {
	s.Timestamps.Enabled = true
	return s
}

// Field returns the descriptor for a declared field.
func (s *Schema) Field(name string) (*FieldType, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Model is a named, registered collection schema.
type Model struct {
	Name   string
	Schema *Schema
}

// HasSchema reports whether the model carries a usable field-descriptor
// registry. Models without one are skipped by extraction.
func (m *Model) HasSchema() bool {
	return m != nil && m.Schema != nil && m.Schema.fields != nil
}

// String implements fmt.Stringer for log output.
func (m *Model) String() string {
	if m.Schema == nil {
		return fmt.Sprintf("%s (no schema)", m.Name)
	}
	return fmt.Sprintf("%s (%d fields)", m.Name, m.Schema.Len())
}
