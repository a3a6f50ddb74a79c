package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidForm     = errors.New("invalid form")
)

// FieldErrors maps a field's JSON name to a human readable message.
// It wraps [ErrInvalidForm].
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return ErrInvalidForm.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidForm
}

// First returns the message of the alphabetically first failing field. It is
// used where only one line of feedback fits.
func (e FieldErrors) First() string {
	first := ""
	for f := range e {
		if first == "" || f < first {
			first = f
		}
	}
	if first == "" {
		return ""
	}
	return first + " " + e[first]
}
