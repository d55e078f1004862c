package apischema

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Code is the machine-readable category of a ValidationError.
type Code string

// The complete set of codes the engine emits.
const (
	CodeRequired        Code = "REQUIRED"
	CodeInvalidType     Code = "INVALID_TYPE"
	CodeInvalidValue    Code = "INVALID_VALUE"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodePatternMismatch Code = "PATTERN_MISMATCH"
)

// ValidationError is a single field violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// ValidationErrors is the ordered list of violations for one input. The order
// follows schema declaration order, not the input's key order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether there is an error for the given dotted field path.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// First returns the first error, or the zero value if there is none.
func (ve ValidationErrors) First() ValidationError {
	if len(ve) == 0 {
		return ValidationError{}
	}
	return ve[0]
}

// Fields returns the field paths in error order.
func (ve ValidationErrors) Fields() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Field
	}
	return out
}

// newStepError builds the error a single evaluation step returns. The message
// is an ozzo template rendered against params.
func newStepError(code Code, message string, params map[string]any) validation.Error {
	err := validation.NewError(string(code), message)
	if len(params) > 0 {
		err = err.SetParams(params)
	}
	return err
}

// toValidationError converts a step error into the public record for path.
func toValidationError(path string, err validation.Error) ValidationError {
	return ValidationError{
		Field:   path,
		Message: path + " " + err.Error(),
		Code:    Code(err.Code()),
	}
}
