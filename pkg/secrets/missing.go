package secrets

import "strings"

// MissingError reports one or more required secrets that could not be
// resolved. It always carries at least one description.
type MissingError struct {
	Descriptions []Description
}

// NewMissingError builds a MissingError from the given descriptions. It
// panics when called with none: an empty missing-secrets error is a
// programming defect, not a runtime condition.
func NewMissingError(descs ...Description) *MissingError {
	if len(descs) == 0 {
		panic("secrets: MissingError requires at least one description")
	}
	return &MissingError{Descriptions: descs}
}

// Combine merges multiple missing-secret errors into one, concatenating
// their description sequences in input order. Duplicates are preserved: the
// same missing secret may be required by several consumers, and callers may
// want to know how many were affected. Panics when called with no errors.
func Combine(errs ...*MissingError) *MissingError {
	if len(errs) == 0 {
		panic("secrets: Combine requires at least one error")
	}
	var descs []Description
	for _, err := range errs {
		descs = append(descs, err.Descriptions...)
	}
	return NewMissingError(descs...)
}

// Error renders one line of preamble and one line per missing secret, each
// identifying the scope, key, and how to obtain the value.
func (e *MissingError) Error() string {
	var b strings.Builder
	b.WriteString("missing secret values:")
	for _, d := range e.Descriptions {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}
