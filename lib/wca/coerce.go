package wca

import (
	"strconv"
)

// an empty cell is the only way the page says "no record"
func coerceOptionalString(text string) *string {
	if text == "" {
		return nil
	}
	return &text
}

func coerceOptionalUint(text string) (*uint32, error) {
	if text == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return nil, &MalformedFieldError{Raw: text, Err: err}
	}
	out := uint32(value)
	return &out, nil
}

func coerceRequiredUint(text string) (uint32, error) {
	value, err := coerceOptionalUint(text)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, &MalformedFieldError{Raw: text, Err: strconv.ErrSyntax}
	}
	return *value, nil
}
