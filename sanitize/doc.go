// Package sanitize provides pure value cleaners for untrusted input. They
// never fail: [String] always returns a cleaned string and [Number] returns a
// clamped float64, or NaN when the value cannot be read as a number.
//
// The cleaners are used by the apischema evaluator for fields that carry
// sanitize options, and can be used on their own outside HTTP handling.
package sanitize
