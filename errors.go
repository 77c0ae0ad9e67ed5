package idnumber

import "errors"

var (
	// ErrInvalidLength is returned when a checksum input has the wrong number of characters.
	ErrInvalidLength = errors.New("invalid input length")

	// ErrInvalidDigit is returned when a checksum input contains a non-digit character.
	ErrInvalidDigit = errors.New("input contains a non-digit character")

	// ErrUnknownScheme is returned by Generate for a slug no scheme carries.
	ErrUnknownScheme = errors.New("unknown identifier scheme")

	// ErrUnsupportedOption is returned by Generate when an option does not
	// apply to the requested scheme.
	ErrUnsupportedOption = errors.New("option not supported by scheme")
)
