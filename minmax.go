package apischema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkRange bounds numbers by value and strings and arrays by length.
// Nil bounds are open.
func checkRange(kind Kind, value any, lo, hi *float64) validation.Error {
	n, unit := measure(kind, value)
	if (lo == nil || n >= *lo) && (hi == nil || n <= *hi) {
		return nil
	}

	params := map[string]any{"unit": unit}
	var msg string
	switch {
	case lo != nil && hi != nil:
		params["min"], params["max"] = *lo, *hi
		msg = "must be between {{.min}} and {{.max}}{{.unit}}"
	case lo != nil:
		params["min"] = *lo
		msg = "must be at least {{.min}}{{.unit}}"
	default:
		params["max"] = *hi
		msg = "must be at most {{.max}}{{.unit}}"
	}
	return newStepError(CodeOutOfRange, msg, params)
}
