package apischema

type (
	// Kind is the declared type of a field. The set of kinds is closed.
	Kind string

	// FieldRule describes the constraints for a single field.
	//
	// Min and Max bound numbers by value and strings and arrays by length.
	// Pattern must match the whole string. EnumValues lists the allowed
	// literals when Type is KindEnum. Nested is applied to the value of an
	// object field.
	FieldRule struct {
		Type       Kind
		Required   bool
		Pattern    string
		Min        *float64
		Max        *float64
		EnumValues []any
		Sanitize   *SanitizeOptions
		Nested     []Field

		// Documentation only. Never consulted during validation.
		Description string
		Example     any
		Deprecated  bool
	}

	// SanitizeOptions are forwarded to the sanitizer matching the field kind.
	// MaxLength applies to strings (0 means unlimited), Min and Max to numbers.
	SanitizeOptions struct {
		MaxLength int
		Min       *float64
		Max       *float64
	}

	// Field binds a field name to its rule. A descriptor is an ordered
	// []Field; the order is the order errors are reported in.
	Field struct {
		Name string
		Rule FieldRule
	}
)

// Supported field kinds.
const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindEnum    Kind = "enum"
)

var kinds = []any{KindString, KindNumber, KindBoolean, KindArray, KindObject, KindEnum}

// F is shorthand for Field{Name: name, Rule: rule}.
func F(name string, rule FieldRule) Field {
	return Field{Name: name, Rule: rule}
}

// Float returns a pointer to f, for Min and Max.
func Float(f float64) *float64 {
	return &f
}
