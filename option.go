package idnumber

import (
	"time"

	"github.com/dmitrymomot/idnumber/pkg/digits"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

type config struct {
	seed   int64
	seeded bool
	stream *digits.Stream
	now    func() time.Time
	table  *locales.Table
	locale string
}

// Option configures a Generator.
type Option func(*config)

// WithSeed seeds the generator's digit stream, making it replay the same
// identifier sequence for the same seed. Ignored when WithStream is also
// given.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithStream supplies an external digit stream, letting several generators
// share one reproducible sequence.
func WithStream(s *digits.Stream) Option {
	if s == nil {
		panic("WithStream: nil stream")
	}
	return func(c *config) { c.stream = s }
}

// WithNow overrides the clock used for birth-date-derived digits. Tests
// pin it to a fixed instant.
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("WithNow: nil clock")
	}
	return func(c *config) { c.now = now }
}

// WithTable supplies a pre-loaded pattern-template table. Tables missing
// the ssn keys still generate; the built-in templates fill the gap.
func WithTable(t *locales.Table) Option {
	if t == nil {
		panic("WithTable: nil table")
	}
	return func(c *config) { c.table = t }
}

// WithLocale selects the shipped template table for the locale tag.
// Variants of a shipped locale resolve to it ("en-US" to "en") and unknown
// locales fall back to the default table; New panics only when the tag
// itself is malformed. Ignored when WithTable is also given.
func WithLocale(locale string) Option {
	return func(c *config) { c.locale = locale }
}
