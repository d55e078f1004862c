package apischema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Result is the outcome of evaluating one input. Exactly one of Value and
// Errors is set: Value holds the sanitized fields of a valid input, Errors the
// ordered violations of an invalid one.
type Result struct {
	Value  map[string]any
	Errors ValidationErrors
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ValidatorFunc validates an input and returns nil on success.
type ValidatorFunc func(input map[string]any) ValidationErrors

var (
	// ErrMalformedBody is returned when a payload is not valid JSON.
	ErrMalformedBody = errors.New("apischema: malformed JSON body")
	// ErrNotObject is returned when a payload is valid JSON but not an object.
	ErrNotObject = errors.New("apischema: body must be a JSON object")
)

// Evaluate checks every field of input in declaration order. All failing
// fields are reported, at most one error each. Fields the schema does not
// declare are dropped from the sanitized value, as are absent optional ones.
// input is never modified.
func (s *Schema) Evaluate(input map[string]any) Result {
	return s.evaluate("", input)
}

// Validate is like Evaluate but returns only the errors, as [ValidationErrors],
// or nil when input is valid.
func (s *Schema) Validate(input map[string]any) error {
	if res := s.Evaluate(input); !res.Valid() {
		return res.Errors
	}
	return nil
}

// Func returns the schema as a ValidatorFunc.
func (s *Schema) Func() ValidatorFunc {
	return func(input map[string]any) ValidationErrors {
		return s.Evaluate(input).Errors
	}
}

// CreateSchema compiles fields and returns a pure validation function for
// use outside HTTP, e.g. in batch jobs or tests.
func CreateSchema(fields ...Field) (ValidatorFunc, error) {
	s, err := NewSchema(fields...)
	if err != nil {
		return nil, err
	}
	return s.Func(), nil
}

// UnmarshalAndEvaluate decodes b as a JSON object, then evaluates it.
// An empty payload is treated as {}. Decode failures are returned as errors
// wrapping [ErrMalformedBody] or [ErrNotObject]; they never produce
// ValidationErrors.
func UnmarshalAndEvaluate(b []byte, s *Schema) (Result, error) {
	return DecodeAndEvaluate(bytes.NewReader(b), s)
}

// DecodeAndEvaluate is like UnmarshalAndEvaluate but reads from r. Use it
// directly on an HTTP request body.
func DecodeAndEvaluate(r io.Reader, s *Schema) (Result, error) {
	input, err := decodeObject(r)
	if err != nil {
		return Result{}, err
	}
	return s.Evaluate(input), nil
}

// decodeObject reads exactly one JSON object. Numbers are kept as
// json.Number so large integers in untyped arrays survive re-encoding.
func decodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	switch tok, err := dec.Token(); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	default:
		return nil, fmt.Errorf("%w: unexpected %v after top-level value", ErrMalformedBody, tok)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotObject, kindOf(v))
	}
	return m, nil
}
