package extract

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/schema"
)

// Visited is the identity set of schema objects seen during one extraction
// call, keyed by the UUID each Schema receives at construction. It is scoped
// to a single top-level call and never persisted.
type Visited map[uuid.UUID]struct{}

// NewVisited creates an empty visited set.
func NewVisited() Visited {
	return make(Visited)
}

func (v Visited) has(id uuid.UUID) bool {
	_, ok := v[id]
	return ok
}

func (v Visited) add(id uuid.UUID) {
	v[id] = struct{}{}
}

// ExtractRegistry extracts every usable model in the registry. Models
// without a field-descriptor registry are silently skipped. Each model gets
// a fresh visited set, so cycles are detected within a model but a schema
// embedded by several models is walked for each of them.
func ExtractRegistry(reg *schema.Registry, opts Options) (map[string]ModelSchema, error) {
	if reg == nil || reg.Count() == 0 {
		return nil, fmt.Errorf("no models registered")
	}

	result := make(map[string]ModelSchema)
	for _, name := range reg.Names() {
		m, _ := reg.Get(name)
		if !m.HasSchema() {
			continue
		}
		result[name] = ExtractModel(m, opts, NewVisited())
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("registry contains no models with field descriptors")
	}
	return result, nil
}

// ExtractModel converts one model's field descriptors into a plain mapping.
// Callers extracting several models may share a visited set across calls to
// also suppress cross-model cycles; ExtractRegistry deliberately does not.
func ExtractModel(m *schema.Model, opts Options, visited Visited) ModelSchema {
	s := m.Schema
	if visited.has(s.ID) {
		return CircularModelSchema()
	}
	visited.add(s.ID)

	fields := make(map[string]*FieldInfo)
	for _, name := range s.FieldNames() {
		if skipField(name, opts) {
			continue
		}
		ft, _ := s.Field(name)
		fields[name] = extractField(ft, name, 0, opts, visited)
	}

	if opts.IncludeVirtuals {
		for _, v := range s.Virtuals {
			// The id virtual shadows the identity field and follows its toggle.
			if v.Name == "id" && !opts.IncludeID {
				continue
			}
			fields[v.Name] = &FieldInfo{Type: TypeVirtual, Computed: true}
		}
	}

	// Timestamp descriptors are appended last and replace same-named
	// declared fields: later assignment wins, no merge.
	if opts.IncludeTimestamps && s.Timestamps.Enabled {
		fields[s.Timestamps.CreatedField()] = &FieldInfo{Type: TypeDate, Auto: true}
		fields[s.Timestamps.UpdatedField()] = &FieldInfo{Type: TypeDate, Auto: true}
	}

	return ModelSchema{Fields: fields}
}

// skipField applies the bookkeeping-field rules: the revision counter is
// never extracted, the identity field only when the id feature is on.
func skipField(name string, opts Options) bool {
	if name == schema.VersionKey {
		return true
	}
	if name == schema.IDKey && !opts.IncludeID {
		return true
	}
	return false
}

// extractField converts one raw field descriptor at the given depth.
func extractField(ft *schema.FieldType, path string, depth int, opts Options, visited Visited) *FieldInfo {
	if depth > opts.Depth {
		return &FieldInfo{Type: TypeMixed, Note: NoteMaxDepth}
	}

	var info *FieldInfo

	switch ft.Kind {
	case schema.KindString:
		info = &FieldInfo{Type: TypeString}
		if len(ft.EnumValues) > 0 {
			info.Enum = ft.EnumValues
			info.EnumCount = len(ft.EnumValues)
		}
		info.MinLength = ft.Options.MinLength
		info.MaxLength = ft.Options.MaxLength
		info.Pattern = ft.Options.Match
		info.Lowercase = ft.Options.Lowercase
		info.Uppercase = ft.Options.Uppercase
		info.Trim = ft.Options.Trim

	case schema.KindNumber:
		info = &FieldInfo{Type: TypeNumber}
		info.Min = ft.Options.Min
		info.Max = ft.Options.Max
		switch {
		case len(ft.EnumValues) > 0:
			info.Enum = ft.EnumValues
			info.EnumCount = len(ft.EnumValues)
		case len(ft.Options.Enum) > 0:
			info.Enum = ft.Options.Enum
			info.EnumCount = len(ft.Options.Enum)
		}

	case schema.KindDate:
		info = &FieldInfo{Type: TypeDate}
		info.MinDate = ft.Options.MinDate
		info.MaxDate = ft.Options.MaxDate

	case schema.KindBoolean:
		info = &FieldInfo{Type: TypeBoolean}

	case schema.KindObjectID:
		info = &FieldInfo{Type: TypeObjectReference}
		info.Ref = ft.Options.Ref

	case schema.KindDecimal128:
		info = &FieldInfo{Type: TypeDecimal128}

	case schema.KindBuffer:
		info = &FieldInfo{Type: TypeBinaryBuffer}

	case schema.KindMixed:
		info = &FieldInfo{Type: TypeMixed}

	case schema.KindArray:
		info = &FieldInfo{Type: TypeArray}
		caster := ft.Caster
		if caster == nil {
			caster = &schema.FieldType{Kind: schema.KindMixed}
		}
		info.Items = extractField(caster, path+".$", depth+1, opts, visited)
		// Arrays of raw reference ids declare the ref on the caster; hoist it
		// so items always carries the target name.
		if info.Items.Ref == "" && caster.Options.Ref != "" {
			info.Items.Ref = caster.Options.Ref
		}

	case schema.KindDocument:
		info = &FieldInfo{Type: TypeObject}
		sub := ft.Schema
		if sub == nil {
			break
		}
		if visited.has(sub.ID) {
			info.Circular = true
			break
		}
		visited.add(sub.ID)
		props := make(map[string]*FieldInfo)
		for _, name := range sub.FieldNames() {
			if skipField(name, opts) {
				continue
			}
			sf, _ := sub.Field(name)
			props[name] = extractField(sf, path+"."+name, depth+1, opts, visited)
		}
		info.Properties = props
		info.PropertyCount = len(props)

	case schema.KindMap:
		info = &FieldInfo{Type: TypeMap}
		value := ft.ValueType
		if value == nil {
			value = &schema.FieldType{Kind: schema.KindMixed}
		}
		info.Values = extractField(value, path+".*", depth+1, opts, visited)

	default:
		label := ft.RawKind
		if label == "" {
			label = TypeMixed
		}
		info = &FieldInfo{Type: label}
	}

	applyCommon(info, ft, opts)
	return info
}

// applyCommon sets the attributes shared by every kind.
func applyCommon(info *FieldInfo, ft *schema.FieldType, opts Options) {
	if ft.Options.Required {
		info.Required = true
	}

	if opts.IncludeDefaults {
		switch {
		case ft.Options.DefaultFunc != nil:
			info.HasDefault = true
			info.DefaultValue = functionMarker(ft.Options.DefaultFuncName)
		case ft.Options.HasDefault:
			info.HasDefault = true
			info.DefaultValue = ft.Options.Default
		}
	}

	if ft.Options.Unique {
		info.Unique = true
	}
	if ft.Options.Select != nil {
		v := *ft.Options.Select
		info.Select = &v
	}
	if ft.Options.Immutable {
		info.Immutable = true
	}

	if opts.IncludeIndexes {
		if ft.Options.Index {
			info.Indexed = true
		}
		if ft.Options.Sparse {
			info.Sparse = true
		}
	}

	if opts.IncludeValidators && len(ft.Validators) > 0 {
		info.HasValidators = true
		info.ValidatorCount = len(ft.Validators)
		for _, v := range ft.Validators {
			vi := ValidatorInfo{Kind: v.Kind, Message: v.Message}
			if vi.Message == "" {
				vi.Message = "Validation failed"
			}
			if v.Fn != nil {
				vi.Validator = functionMarker(v.Kind)
			}
			info.Validators = append(info.Validators, vi)
		}
	}
}

// functionMarker replaces an executable function with a descriptive string.
func functionMarker(name string) string {
	if name == "" {
		return "[Function (anonymous)]"
	}
	return fmt.Sprintf("[Function: %s]", name)
}
