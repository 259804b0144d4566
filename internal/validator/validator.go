package validator

import (
	"maps"
	"slices"
	"strings"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("invalid configuration")
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		b.WriteString("; ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Fields[field])
	}
	return b.String()
}

func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
