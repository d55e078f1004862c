package registry

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Gobd/apischema"
	"gopkg.in/yaml.v3"
)

// LoadYAML compiles a YAML or JSON descriptor. name only labels errors.
func LoadYAML(name string, data []byte) (*apischema.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("registry: %s: empty descriptor", name)
	}

	fields, err := parseFields(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}
	s, err := apischema.NewSchema(fields...)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}
	return s, nil
}

// LoadFS registers every file in fsys matching pattern. The schema name is the
// file name without its extension, so schemas/todo.yaml becomes "todo".
func LoadFS(fsys fs.FS, pattern string) (*Registry, error) {
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	r := New()
	for _, file := range matches {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		base := path.Base(file)
		name := strings.TrimSuffix(base, path.Ext(base))

		s, err := LoadYAML(name, data)
		if err != nil {
			return nil, err
		}
		if err := r.Register(name, s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parseFields walks a mapping node in document order.
func parseFields(n *yaml.Node) ([]apischema.Field, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: descriptor must be a mapping of field names to rules", n.Line)
	}

	fields := make([]apischema.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		rule, err := parseRule(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key.Value, err)
		}
		fields = append(fields, apischema.F(key.Value, rule))
	}
	return fields, nil
}

func parseRule(n *yaml.Node) (apischema.FieldRule, error) { //nolint:revive // one case per descriptor key
	var r apischema.FieldRule
	if n.Kind != yaml.MappingNode {
		return r, fmt.Errorf("line %d: rule must be a mapping", n.Line)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		var err error
		switch key.Value {
		case "type":
			var t string
			err = val.Decode(&t)
			r.Type = apischema.Kind(t)
		case "required":
			err = val.Decode(&r.Required)
		case "pattern":
			err = val.Decode(&r.Pattern)
		case "min":
			r.Min = new(float64)
			err = val.Decode(r.Min)
		case "max":
			r.Max = new(float64)
			err = val.Decode(r.Max)
		case "enum":
			err = val.Decode(&r.EnumValues)
		case "sanitize":
			r.Sanitize, err = parseSanitize(val)
		case "nested":
			r.Nested, err = parseFields(val)
		case "description":
			err = val.Decode(&r.Description)
		case "example":
			err = val.Decode(&r.Example)
		case "deprecated":
			err = val.Decode(&r.Deprecated)
		default:
			err = fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
		if err != nil {
			return r, err
		}
	}
	return r, nil
}

func parseSanitize(n *yaml.Node) (*apischema.SanitizeOptions, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: sanitize must be a mapping", n.Line)
	}

	o := &apischema.SanitizeOptions{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		var err error
		switch key.Value {
		case "maxLength":
			err = val.Decode(&o.MaxLength)
		case "min":
			o.Min = new(float64)
			err = val.Decode(o.Min)
		case "max":
			o.Max = new(float64)
			err = val.Decode(o.Max)
		default:
			err = fmt.Errorf("line %d: unknown sanitize key %q", key.Line, key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}
