package apischema

import (
	"math"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI describes the schema as an OpenAPI 3 object schema: one property
// per field with its type, bounds, pattern, enum, nested properties and
// documentation attributes. Required fields are listed in declaration order.
func (s *Schema) OpenAPI() *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	for i := range s.fields {
		f := &s.fields[i]
		obj.WithProperty(f.name, f.describe())
		if f.rule.Required {
			obj.Required = append(obj.Required, f.name)
		}
	}
	return obj
}

func (f *compiledField) describe() *openapi3.Schema {
	var prop *openapi3.Schema
	switch f.rule.Type {
	case KindString:
		prop = openapi3.NewStringSchema()
		if f.pattern != nil {
			prop.WithPattern(f.pattern.String())
		}
		if f.rule.Min != nil {
			prop.WithMinLength(int64(math.Ceil(*f.rule.Min)))
		}
		if f.rule.Max != nil {
			prop.WithMaxLength(int64(math.Floor(*f.rule.Max)))
		}
	case KindNumber:
		prop = openapi3.NewFloat64Schema()
		if f.rule.Min != nil {
			prop.WithMin(*f.rule.Min)
		}
		if f.rule.Max != nil {
			prop.WithMax(*f.rule.Max)
		}
	case KindBoolean:
		prop = openapi3.NewBoolSchema()
	case KindArray:
		prop = openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
		if f.rule.Min != nil {
			prop.WithMinItems(int64(math.Ceil(*f.rule.Min)))
		}
		if f.rule.Max != nil {
			prop.WithMaxItems(int64(math.Floor(*f.rule.Max)))
		}
	case KindObject:
		if f.nested != nil {
			prop = f.nested.OpenAPI()
		} else {
			prop = openapi3.NewObjectSchema()
		}
	case KindEnum:
		prop = enumSchema(f.enum)
	default:
		panic("apischema: unhandled kind " + string(f.rule.Type))
	}

	prop.Description = f.rule.Description
	prop.Example = f.rule.Example
	prop.Deprecated = f.rule.Deprecated
	return prop
}

// enumSchema types the enum when all allowed values share a JSON type.
func enumSchema(values []any) *openapi3.Schema {
	var typ string
	for i, v := range values {
		var t string
		switch v.(type) {
		case string:
			t = openapi3.TypeString
		case bool:
			t = openapi3.TypeBoolean
		case float64:
			t = openapi3.TypeNumber
		}
		if i > 0 && t != typ {
			typ = ""
			break
		}
		typ = t
	}

	prop := openapi3.NewSchema()
	if typ != "" {
		prop.Type = &openapi3.Types{typ}
	}
	return prop.WithEnum(values...)
}
