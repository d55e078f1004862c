package apischema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/Gobd/apischema/sanitize"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// normalizeScalar maps strings, booleans and numbers to a comparable form.
// Every numeric kind becomes float64 so 1, int64(1) and 1.0 compare equal.
func normalizeScalar(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return x, true
	case json.Number:
		f, ok := sanitize.ParseNumber(x)
		return f, ok
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return sanitize.ParseNumber(v)
	}
	return nil, false
}

// checkEnum compares value against the normalized allowed values.
func checkEnum(value any, allowed []any) validation.Error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	want := make([]string, len(allowed))
	for i, a := range allowed {
		want[i] = fmt.Sprint(a)
	}
	return newStepError(CodeInvalidValue, "must be one of: {{.values}}", map[string]any{
		"values": strings.Join(want, ", "),
	})
}
