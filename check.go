package apischema

import (
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that the rule is well formed. It implements
// [validation.Validatable] and is called by [NewSchema] for every field, so a
// malformed descriptor fails when the schema is built rather than per request.
func (r FieldRule) Validate() error {
	isString := r.Type == KindString
	isNumber := r.Type == KindNumber
	bounded := isString || isNumber || r.Type == KindArray
	counted := isString || r.Type == KindArray

	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(kinds...).Error("must be one of string, number, boolean, array, object, enum")),
		validation.Field(&r.EnumValues,
			validation.When(r.Type == KindEnum, validation.Required.Error("must not be empty for enum fields"), validation.By(scalarValues)).
				Else(validation.Empty.Error("only allowed for enum fields")),
		),
		validation.Field(&r.Pattern,
			validation.When(isString, validation.By(compiles)).
				Else(validation.Empty.Error("only allowed for string fields")),
		),
		validation.Field(&r.Min,
			validation.When(!bounded, validation.Nil.Error("only allowed for string, number and array fields")),
			validation.When(counted, validation.By(nonNegative)),
		),
		validation.Field(&r.Max,
			validation.When(!bounded, validation.Nil.Error("only allowed for string, number and array fields")),
			validation.When(counted, validation.By(nonNegative)),
			validation.By(notBelow(r.Min)),
		),
		validation.Field(&r.Nested, validation.When(r.Type != KindObject, validation.Empty.Error("only allowed for object fields"))),
		validation.Field(&r.Sanitize,
			validation.When(!isString && !isNumber, validation.Nil.Error("only allowed for string and number fields")),
			validation.When(isNumber, validation.By(clampWithin(r.Min, r.Max))),
		),
	)
}

// Validate checks the sanitizer options. MaxLength may not be negative and
// Min may not exceed Max.
func (o SanitizeOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MaxLength, validation.By(func(v any) error {
			if v.(int) < 0 {
				return errors.New("must not be negative")
			}
			return nil
		})),
		validation.Field(&o.Max, validation.By(notBelow(o.Min))),
	)
}

func compiles(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := regexp.Compile(s); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

func scalarValues(value any) error {
	values, _ := value.([]any)
	for i, v := range values {
		if _, ok := normalizeScalar(v); !ok {
			return fmt.Errorf("value %d (%T) is not a string, number or boolean", i, v)
		}
	}
	return nil
}

// nonNegative rejects negative length bounds.
func nonNegative(value any) error {
	if f, _ := value.(*float64); f != nil && *f < 0 {
		return errors.New("must not be negative for length bounds")
	}
	return nil
}

// notBelow rejects an upper bound smaller than lower.
func notBelow(lower *float64) validation.RuleFunc {
	return func(value any) error {
		upper, _ := value.(*float64)
		if lower == nil || upper == nil {
			return nil
		}
		if *upper < *lower {
			return fmt.Errorf("must not be less than min (%g)", *lower)
		}
		return nil
	}
}

// clampWithin requires sanitizer bounds to lie inside the field's range, so a
// clamped number still passes the range check.
func clampWithin(lo, hi *float64) validation.RuleFunc {
	return func(value any) error {
		o, _ := value.(*SanitizeOptions)
		if o == nil {
			return nil
		}
		for _, b := range []*float64{o.Min, o.Max} {
			if b == nil {
				continue
			}
			if (lo != nil && *b < *lo) || (hi != nil && *b > *hi) {
				return fmt.Errorf("clamp bound %g is outside the field range", *b)
			}
		}
		return nil
	}
}
