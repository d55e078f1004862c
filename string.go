package apischema

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errPatternMismatch = newStepError(CodePatternMismatch, "does not match the required format", nil)

// checkPattern requires re, which is anchored at compile time, to match s.
func checkPattern(re *regexp.Regexp, s string) validation.Error {
	err := validation.Match(re).ErrorObject(errPatternMismatch).Validate(s)
	if err == nil {
		return nil
	}
	if verr, ok := err.(validation.Error); ok {
		return verr
	}
	return errPatternMismatch
}
