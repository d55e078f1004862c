// Package apischema validates and sanitizes untrusted request payloads
// against declarative schemas.
//
// Declare the fields once, in order, and compile them at startup:
//
//	todo := apischema.MustSchema(
//	    apischema.F("title", apischema.FieldRule{Type: apischema.KindString, Required: true, Max: apischema.Float(200)}),
//	    apischema.F("priority", apischema.FieldRule{Type: apischema.KindEnum, EnumValues: []any{"low", "medium", "high"}}),
//	)
//
// Then evaluate decoded input directly:
//
//	res := todo.Evaluate(input)
//	if !res.Valid() {
//	    fmt.Println(res.Errors.First().Code) // e.g. REQUIRED
//	}
//
// or guard an HTTP route with [Middleware], which answers invalid bodies with
// a 400 envelope and hands valid, sanitized bodies to the next handler.
//
// Every field is checked in a fixed order (presence, type, enum, pattern,
// range, nested object, sanitize) and stops at its first failure; all fields
// are checked, so the error list can hold one entry per field, in declaration
// order.
//
// Sub-packages:
//   - sanitize – standalone string and number cleaners
//   - registry – named schemas loaded from YAML descriptors
//   - openapi – OpenAPI documents for validated endpoints
package apischema
