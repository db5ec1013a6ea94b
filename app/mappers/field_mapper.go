package mappers

import (
	"encoding/json"
	"time"
)

// FieldKind selects the conversion applied to a field's value when it
// crosses the store boundary.
type FieldKind int

const (
	// KindValue passes the value through untouched.
	KindValue FieldKind = iota
	// KindTime parses date strings into time.Time on the way in and
	// serializes to RFC 3339 on the way out.
	KindTime
	// KindJSON holds a string list stored as a JSON text column.
	KindJSON
	// KindNested is a joined sub-record mapped with its own schema.
	// Nested values are read-only projections and are never written
	// back to the store.
	KindNested
)

type Field struct {
	// Column is the store-side name (snake_case, or the joined table
	// name for KindNested).
	Column string
	// Name is the application-side field name (camelCase).
	Name   string
	Kind   FieldKind
	Nested *Schema
}

// Schema converts rows of one table between the store representation
// (column-keyed map) and the application representation (field-keyed
// map). Unknown keys are dropped silently in both directions.
type Schema struct {
	fields   []Field
	byColumn map[string]*Field
	byName   map[string]*Field
}

func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields:   fields,
		byColumn: make(map[string]*Field, len(fields)),
		byName:   make(map[string]*Field, len(fields)),
	}
	for i := range s.fields {
		f := &s.fields[i]
		s.byColumn[f.Column] = f
		s.byName[f.Name] = f
	}
	return s
}

// ToModel maps a store row onto application field names, parsing date
// columns and recursing into joined sub-records.
func (s *Schema) ToModel(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for col, v := range raw {
		f, ok := s.byColumn[col]
		if !ok {
			continue
		}
		switch f.Kind {
		case KindTime:
			out[f.Name] = parseDate(v)
		case KindJSON:
			out[f.Name] = parseStringList(v)
		case KindNested:
			if sub, ok := v.(map[string]any); ok && f.Nested != nil {
				out[f.Name] = f.Nested.ToModel(sub)
			}
		default:
			out[f.Name] = v
		}
	}
	return out
}

// ToStore maps application fields back onto store columns. Nested
// projections are dropped; date values are serialized to RFC 3339.
func (s *Schema) ToStore(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, v := range fields {
		f, ok := s.byName[name]
		if !ok || f.Kind == KindNested {
			continue
		}
		switch f.Kind {
		case KindTime:
			out[f.Column] = formatDate(v)
		case KindJSON:
			out[f.Column] = formatStringList(v)
		default:
			out[f.Column] = v
		}
	}
	return out
}

// ToModelList maps a full result set.
func (s *Schema) ToModelList(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.ToModel(row))
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v any) any {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t
			}
		}
	}
	return v
}

func formatDate(v any) any {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format(time.RFC3339)
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
	}
	return v
}

func parseStringList(v any) any {
	switch l := v.(type) {
	case string:
		var items []string
		if err := json.Unmarshal([]byte(l), &items); err == nil {
			return items
		}
	case []byte:
		var items []string
		if err := json.Unmarshal(l, &items); err == nil {
			return items
		}
	case []any:
		items := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	}
	return v
}

func formatStringList(v any) any {
	switch l := v.(type) {
	case []string, []any:
		if b, err := json.Marshal(l); err == nil {
			return string(b)
		}
	case string:
		return l
	}
	return v
}
