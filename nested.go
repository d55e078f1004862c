package apischema

// evaluateNested validates obj against the field's nested schema. Only the
// first nested error is surfaced, already carrying its dotted path, so the
// parent reports at most one error per field.
func (f *compiledField) evaluateNested(path string, obj map[string]any) (map[string]any, *ValidationError) {
	res := f.nested.evaluate(path, obj)
	if !res.Valid() {
		first := res.Errors.First()
		return nil, &first
	}
	return res.Value, nil
}
