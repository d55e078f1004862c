package sanitize

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// NumberOptions configures [Number]. Nil bounds are not applied. Min greater
// than Max is a caller error and the result is then unspecified.
type NumberOptions struct {
	Min *float64
	Max *float64
}

// Number parses value and clamps it to [o.Min, o.Max]. Unparseable values
// yield NaN, which is returned unclamped; rejecting it is the caller's job.
func Number(value any, o NumberOptions) float64 {
	f, ok := ParseNumber(value)
	if !ok {
		return math.NaN()
	}
	return Clamp(f, o)
}

// Clamp applies the bounds of o to f. NaN is returned as is.
func Clamp(f float64, o NumberOptions) float64 {
	if math.IsNaN(f) {
		return f
	}
	if o.Min != nil && f < *o.Min {
		f = *o.Min
	}
	if o.Max != nil && f > *o.Max {
		f = *o.Max
	}
	return f
}

// ParseNumber reads value as a float64. Go numeric kinds, json.Number and
// decimal strings (surrounding whitespace allowed) are accepted; anything
// else, including booleans, reports false.
func ParseNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		// Also covers json.Number.
		s := strings.TrimSpace(rv.String())
		if s == "" || !govalidator.IsFloat(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return ParseNumber(rv.Elem().Interface())
	default:
		return 0, false
	}
}
