package apischema

import (
	"unicode/utf8"
)

// measure returns the quantity range checks apply to and the unit suffix
// used in messages.
func measure(kind Kind, value any) (float64, string) {
	switch kind {
	case KindNumber:
		return value.(float64), ""
	case KindString:
		return float64(utf8.RuneCountInString(value.(string))), " characters"
	case KindArray:
		return float64(len(value.([]any))), " items"
	default:
		return 0, ""
	}
}
