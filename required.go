package apischema

import (
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errRequired = newStepError(CodeRequired, "is required", nil)

// provided reports whether a field counts as supplied. Missing keys, nil and
// strings holding nothing but whitespace or control bytes are not provided.
func provided(raw any, present bool) bool {
	if !present || raw == nil {
		return false
	}
	if s, ok := raw.(string); ok {
		return !blank(s)
	}
	return true
}

func blank(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if (r == utf8.RuneError && size == 1) || r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			continue
		}
		return false
	}
	return true
}

// checkPresence is the first step: it decides whether the remaining steps run.
func checkPresence(rule FieldRule, raw any, present bool) (run bool, err validation.Error) {
	if provided(raw, present) {
		return true, nil
	}
	if rule.Required {
		return false, errRequired
	}
	return false, nil
}
