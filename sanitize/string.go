package sanitize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// StringOptions configures [String]. MaxLength is counted in runes; zero
// means unlimited.
type StringOptions struct {
	MaxLength int
}

// String coerces value to a string, drops invalid UTF-8, strips NUL and the
// other C0 control bytes, trims surrounding whitespace and truncates the
// result to o.MaxLength runes. A nil value yields "".
//
// String is idempotent and the result never exceeds o.MaxLength runes.
func String(value any, o StringOptions) string {
	return clean(toString(value), o.MaxLength)
}

// StringFunc returns String bound to o as a plain string transform.
func StringFunc(o StringOptions) func(string) string {
	return func(s string) string {
		return clean(s, o.MaxLength)
	}
}

func clean(s string, maxLength int) string {
	s = strings.ToValidUTF8(s, "")
	s = govalidator.StripLow(s, false)
	s = govalidator.Trim(s, "")
	if maxLength > 0 {
		s = truncate(s, maxLength)
	}
	return s
}

// truncate cuts s to n runes. Whitespace exposed at the cut is trimmed
// again so a second pass is a no-op.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return govalidator.RightTrim(s[:i], "")
		}
		count++
	}
	return s
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return govalidator.ToString(v)
	}
}
