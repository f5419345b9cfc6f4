package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Definition file shape:
//
//	{
//	  "models": {
//	    "User": {
//	      "timestamps": true,
//	      "virtuals": ["fullName"],
//	      "fields": {
//	        "username": {"type": "String", "required": true, "minLength": 3},
//	        "tags":     ["String"],
//	        "role":     "String",
//	        "profile":  {"type": "Object", "fields": {"bio": "String"}},
//	        "meta":     {"type": "Map", "of": "String"}
//	      }
//	    }
//	  }
//	}
//
// A field is a kind label, a one-element array (array shorthand), or an
// object. Unknown kind labels are preserved verbatim.

type definitionFile struct {
	Models map[string]modelDef `json:"models"`
}

type modelDef struct {
	Timestamps json.RawMessage            `json:"timestamps,omitempty"`
	Virtuals   []string                   `json:"virtuals,omitempty"`
	Fields     map[string]json.RawMessage `json:"fields"`
}

type fieldDef struct {
	Type      string          `json:"type"`
	Required  bool            `json:"required,omitempty"`
	Unique    bool            `json:"unique,omitempty"`
	Index     bool            `json:"index,omitempty"`
	Sparse    bool            `json:"sparse,omitempty"`
	Immutable bool            `json:"immutable,omitempty"`
	Lowercase bool            `json:"lowercase,omitempty"`
	Uppercase bool            `json:"uppercase,omitempty"`
	Trim      bool            `json:"trim,omitempty"`
	Select    *bool           `json:"select,omitempty"`
	Enum      []interface{}   `json:"enum,omitempty"`
	MinLength *int            `json:"minLength,omitempty"`
	MaxLength *int            `json:"maxLength,omitempty"`
	Min       *float64        `json:"min,omitempty"`
	Max       *float64        `json:"max,omitempty"`
	MinDate   string          `json:"minDate,omitempty"`
	MaxDate   string          `json:"maxDate,omitempty"`
	Match     json.RawMessage `json:"match,omitempty"`
	Ref       string          `json:"ref,omitempty"`
	Default   json.RawMessage `json:"default,omitempty"`

	Items      json.RawMessage            `json:"items,omitempty"`
	Fields     map[string]json.RawMessage `json:"fields,omitempty"`
	Of         json.RawMessage            `json:"of,omitempty"`
	Validators []validatorDef             `json:"validators,omitempty"`
}

type validatorDef struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

type timestampsDef struct {
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// LoadFile reads a JSON definition file and returns a populated registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	return Load(data)
}

// Load parses JSON definition bytes and returns a populated registry.
func Load(data []byte) (*Registry, error) {
	var def definitionFile
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	if len(def.Models) == 0 {
		return nil, fmt.Errorf("definitions contain no models")
	}

	registry := NewRegistry()
	for name, md := range def.Models {
		s, err := buildSchema(md)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		if _, err := registry.Register(name, s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func buildSchema(md modelDef) (*Schema, error) {
	s := New()

	if len(md.Timestamps) > 0 {
		var enabled bool
		if err := json.Unmarshal(md.Timestamps, &enabled); err == nil {
			s.Timestamps.Enabled = enabled
		} else {
			var ts timestampsDef
			if err := json.Unmarshal(md.Timestamps, &ts); err != nil {
				return nil, fmt.Errorf("invalid timestamps option: %w", err)
			}
			s.Timestamps = TimestampOptions{Enabled: true, CreatedAt: ts.CreatedAt, UpdatedAt: ts.UpdatedAt}
		}
	}

	for name, raw := range md.Fields {
		ft, err := buildField(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		s.Add(name, ft)
	}

	for _, v := range md.Virtuals {
		s.AddVirtual(Virtual{Name: v})
	}

	return s, nil
}

// buildField turns one raw JSON field declaration into a FieldType.
func buildField(raw json.RawMessage) (*FieldType, error) {
	// Kind label shorthand: "String"
	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		return fieldForLabel(label), nil
	}

	// Array shorthand: ["String"] or [{"type": ...}]
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err == nil {
		if len(elems) == 0 {
			return nil, fmt.Errorf("array shorthand has no element declaration")
		}
		caster, err := buildField(elems[0])
		if err != nil {
			return nil, err
		}
		return &FieldType{Kind: KindArray, Caster: caster}, nil
	}

	var fd fieldDef
	if err := json.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("unusable field declaration: %w", err)
	}
	return fieldFromDef(fd)
}

func fieldForLabel(label string) *FieldType {
	kind, ok := ParseFieldKind(label)
	ft := &FieldType{Kind: kind}
	if !ok {
		ft.RawKind = label
	}
	return ft
}

func fieldFromDef(fd fieldDef) (*FieldType, error) {
	ft := fieldForLabel(fd.Type)

	ft.Options = FieldOptions{
		Required:  fd.Required,
		Unique:    fd.Unique,
		Index:     fd.Index,
		Sparse:    fd.Sparse,
		Immutable: fd.Immutable,
		Lowercase: fd.Lowercase,
		Uppercase: fd.Uppercase,
		Trim:      fd.Trim,
		Select:    fd.Select,
		Enum:      fd.Enum,
		MinLength: fd.MinLength,
		MaxLength: fd.MaxLength,
		Min:       fd.Min,
		Max:       fd.Max,
		Ref:       fd.Ref,
	}

	// String and Number kinds resolve their enum members eagerly.
	if ft.Kind == KindString || ft.Kind == KindNumber {
		ft.EnumValues = fd.Enum
	}

	if fd.MinDate != "" {
		t, err := time.Parse(time.RFC3339, fd.MinDate)
		if err != nil {
			return nil, fmt.Errorf("invalid minDate: %w", err)
		}
		ft.Options.MinDate = &t
	}
	if fd.MaxDate != "" {
		t, err := time.Parse(time.RFC3339, fd.MaxDate)
		if err != nil {
			return nil, fmt.Errorf("invalid maxDate: %w", err)
		}
		ft.Options.MaxDate = &t
	}

	if len(fd.Match) > 0 {
		pattern, message, err := parseMatch(fd.Match)
		if err != nil {
			return nil, err
		}
		ft.Options.Match = pattern
		ft.Options.MatchMessage = message
	}

	if len(fd.Default) > 0 {
		var v interface{}
		if err := json.Unmarshal(fd.Default, &v); err != nil {
			return nil, fmt.Errorf("invalid default: %w", err)
		}
		ft.Options.Default = v
		ft.Options.HasDefault = true
	}

	for _, vd := range fd.Validators {
		ft.Validators = append(ft.Validators, ValidatorSpec{Kind: vd.Kind, Message: vd.Message})
	}

	switch ft.Kind {
	case KindArray:
		if len(fd.Items) == 0 {
			ft.Caster = &FieldType{Kind: KindMixed}
			break
		}
		caster, err := buildField(fd.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		ft.Caster = caster
	case KindDocument:
		sub := New()
		for name, raw := range fd.Fields {
			f, err := buildField(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			sub.Add(name, f)
		}
		ft.Schema = sub
	case KindMap:
		if len(fd.Of) == 0 {
			ft.ValueType = &FieldType{Kind: KindMixed}
			break
		}
		value, err := buildField(fd.Of)
		if err != nil {
			return nil, fmt.Errorf("of: %w", err)
		}
		ft.ValueType = value
	}

	return ft, nil
}

// parseMatch accepts either a pattern string or a [pattern, message] pair.
func parseMatch(raw json.RawMessage) (string, string, error) {
	var pattern string
	if err := json.Unmarshal(raw, &pattern); err == nil {
		return pattern, "", nil
	}

	var pair []string
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) == 0 {
		return "", "", fmt.Errorf("invalid match declaration")
	}
	if len(pair) > 1 {
		return pair[0], pair[1], nil
	}
	return pair[0], "", nil
}
