package locales

import "errors"

var (
	ErrInvalidLocale    = errors.New("invalid locale tag")
	ErrFailedToParse    = errors.New("failed to parse locale table")
	ErrMissingKey       = errors.New("locale table key not found")
	ErrNotATemplate     = errors.New("locale table key does not hold a template")
	ErrNotATemplateList = errors.New("locale table key does not hold a template list")
)
