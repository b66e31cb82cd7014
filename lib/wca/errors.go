package wca

import (
	"fmt"
)

// StructuralError means the document does not have the shape the WCA person
// page is expected to have.
type StructuralError struct {
	// Region names the part of the page being read, ex. "event row".
	Region string
	// Missing is set when a required cell had no text, in which case
	// Expected and Found are unset.
	Missing  bool
	Expected string
	Found    int
}

func (e *StructuralError) Error() string {
	if e.Missing {
		return fmt.Sprintf("parse error: did not get %s for one or more items", e.Region)
	}
	return fmt.Sprintf(
		"parse error: didn't find expected amount of cells in %s, expected %s, found %d",
		e.Region, e.Expected, e.Found,
	)
}

// MalformedFieldError means a cell that must be empty or numeric held
// something else.
type MalformedFieldError struct {
	// Field is the dotted path of the field being read, ex. "single.world",
	// it may be empty when the error has not been attributed yet.
	Field string
	Raw   string
	Err   error
}

func (e *MalformedFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("could not parse integer: %q", e.Raw)
	}
	return fmt.Sprintf("could not parse integer for %s: %q", e.Field, e.Raw)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// withField prefixes the field path of a *MalformedFieldError, other errors
// are returned as-is.
func withField(err error, field string) error {
	malformed, ok := err.(*MalformedFieldError)
	if !ok {
		return err
	}
	path := field
	if malformed.Field != "" {
		path = field + "." + malformed.Field
	}
	return &MalformedFieldError{
		Field: path,
		Raw:   malformed.Raw,
		Err:   malformed.Err,
	}
}
