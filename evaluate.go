package apischema

import (
	"github.com/Gobd/apischema/sanitize"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// evaluate validates the input's fields in declaration order. prefix is the
// dotted path of the enclosing object, empty at the top level.
func (s *Schema) evaluate(prefix string, input map[string]any) Result {
	var errs ValidationErrors
	out := make(map[string]any, len(s.fields))
	for i := range s.fields {
		f := &s.fields[i]
		raw, present := input[f.name]
		value, keep, err := f.evaluate(fieldPath(prefix, f.name), raw, present)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		if keep {
			out[f.name] = value
		}
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Value: out}
}

// evaluate runs the steps for one field and stops at the first failure.
// keep is false for an absent optional field, which produces no output.
func (f *compiledField) evaluate(path string, raw any, present bool) (value any, keep bool, verr *ValidationError) {
	fail := func(err validation.Error) (any, bool, *ValidationError) {
		e := toValidationError(path, err)
		return nil, false, &e
	}

	run, err := checkPresence(f.rule, raw, present)
	if err != nil {
		return fail(err)
	}
	if !run {
		return nil, false, nil
	}

	if value, err = coerce(f.rule.Type, raw); err != nil {
		return fail(err)
	}

	// Strings are cleaned before the format and length checks so the
	// sanitized value passes them again.
	if f.rule.Type == KindString && f.rule.Sanitize != nil {
		value = f.sanitize(value)
	}

	if f.rule.Type == KindEnum {
		if err := checkEnum(value, f.enum); err != nil {
			return fail(err)
		}
	}

	if f.pattern != nil {
		if err := checkPattern(f.pattern, value.(string)); err != nil {
			return fail(err)
		}
	}

	if f.rule.Min != nil || f.rule.Max != nil {
		if err := checkRange(f.rule.Type, value, f.rule.Min, f.rule.Max); err != nil {
			return fail(err)
		}
	}

	if f.nested != nil {
		obj, nerr := f.evaluateNested(path, value.(map[string]any))
		if nerr != nil {
			return nil, false, nerr
		}
		value = obj
	}

	if f.rule.Type == KindNumber {
		value = f.sanitize(value)
	}
	return value, true, nil
}

func (f *compiledField) sanitize(value any) any {
	o := f.rule.Sanitize
	if o == nil {
		return value
	}
	switch f.rule.Type {
	case KindString:
		return sanitize.String(value, sanitize.StringOptions{MaxLength: o.MaxLength})
	case KindNumber:
		return sanitize.Number(value, sanitize.NumberOptions{Min: o.Min, Max: o.Max})
	default:
		return value
	}
}

// fieldPath builds a dot-separated path.
func fieldPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
