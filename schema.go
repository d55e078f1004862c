package apischema

import (
	"errors"
	"fmt"
	"regexp"
)

// Schema is a compiled, immutable descriptor. Patterns are compiled and enum
// values normalized once in [NewSchema]; a Schema is safe for concurrent use.
type Schema struct {
	fields []compiledField
}

type compiledField struct {
	name    string
	rule    FieldRule
	pattern *regexp.Regexp
	enum    []any
	nested  *Schema
}

// ErrInvalidSchema is wrapped by every error NewSchema returns.
var ErrInvalidSchema = errors.New("apischema: invalid schema")

// NewSchema compiles fields into a Schema. It fails on duplicate or empty
// field names and on any rule that does not pass [FieldRule.Validate].
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{fields: make([]compiledField, 0, len(fields))}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidSchema)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		seen[f.Name] = struct{}{}

		cf, err := compileField(f)
		if err != nil {
			return nil, err
		}
		s.fields = append(s.fields, cf)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func compileField(f Field) (compiledField, error) {
	if err := f.Rule.Validate(); err != nil {
		return compiledField{}, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, f.Name, err)
	}

	cf := compiledField{name: f.Name, rule: f.Rule}
	if f.Rule.Pattern != "" {
		// Anchored so the whole value has to match.
		cf.pattern = regexp.MustCompile(`^(?:` + f.Rule.Pattern + `)$`)
	}
	if f.Rule.Type == KindEnum {
		cf.enum = make([]any, len(f.Rule.EnumValues))
		for i, v := range f.Rule.EnumValues {
			cf.enum[i], _ = normalizeScalar(v)
		}
	}
	if len(f.Rule.Nested) > 0 {
		nested, err := NewSchema(f.Rule.Nested...)
		if err != nil {
			return compiledField{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		cf.nested = nested
	}
	return cf, nil
}

// Fields returns the top-level field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Len returns the number of top-level fields.
func (s *Schema) Len() int {
	return len(s.fields)
}
