package apischema

import (
	"encoding/json"
	"maps"
	"math"
	"reflect"

	"github.com/Gobd/apischema/sanitize"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// coerce verifies raw against kind and returns the value in its canonical
// form: numbers become float64, arrays []any and enum numbers float64.
// Containers are copied so the caller's input is never shared.
func coerce(kind Kind, raw any) (any, validation.Error) {
	switch kind {
	case KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case KindNumber:
		if f, ok := sanitize.ParseNumber(raw); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
	case KindBoolean:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindArray:
		if a, ok := toArray(raw); ok {
			return a, nil
		}
	case KindObject:
		if m, ok := raw.(map[string]any); ok {
			return maps.Clone(m), nil
		}
	case KindEnum:
		if v, ok := normalizeScalar(raw); ok {
			return v, nil
		}
	default:
		panic("apischema: unhandled kind " + string(kind))
	}
	return nil, newStepError(CodeInvalidType, "must be of type {{.expected}}, got {{.actual}}", map[string]any{
		"expected": expectedName(kind),
		"actual":   kindOf(raw),
	})
}

func toArray(raw any) ([]any, bool) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func expectedName(kind Kind) string {
	if kind == KindEnum {
		return "string, number or boolean"
	}
	return string(kind)
}

// kindOf names the JSON kind of v for error messages.
func kindOf(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(json.Number); ok {
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		if _, ok := sanitize.ParseNumber(v); ok {
			return "numeric string"
		}
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return rv.Kind().String()
	}
}
