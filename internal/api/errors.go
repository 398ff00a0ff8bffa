package api

import (
	"sort"
	"strings"
)

// ValidationError carries the backend's field-keyed validation messages
// from a rejected create, update or register request. Keys are field names
// (amount, category, date, description, username, email, password) or
// "non_field" for errors that belong to no single input.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Fields[k], ", "))
	}
	return b.String()
}

// FieldErrors returns the messages for one field, nil when the field is
// clean. Callers surface these next to the relevant input without touching
// other in-progress form state.
func (e *ValidationError) FieldErrors(field string) []string {
	return e.Fields[field]
}
