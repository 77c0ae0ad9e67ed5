package idnumber

import (
	"time"

	"github.com/dmitrymomot/idnumber/pkg/digits"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

// maxAttempts caps the rejection-sampling loops (SSN candidates, CPF digit
// blocks). Real streams reject at most a few percent of draws, so the cap
// is never reached in practice; it only bounds the work under a
// pathological stream, after which generation falls back to a constrained
// draw that cannot produce a rejected value.
const maxAttempts = 100

// Generator produces identification numbers for a fixed set of national
// schemes. It owns the three collaborators every scheme draws from: a
// random digit stream, a clock for birth-date-derived digits and a
// template table for pattern-driven schemes.
//
// A Generator is safe for concurrent use. Construct one with New.
type Generator struct {
	stream *digits.Stream
	now    func() time.Time
	table  *locales.Table
}

// New returns a Generator configured by opts. Without options the digit
// stream is seeded from the wall clock, the clock is time.Now and the
// template table is the shipped default locale.
//
// New panics when WithLocale names a malformed locale tag, so a
// misconfigured process fails at startup instead of mid-generation.
func New(opts ...Option) *Generator {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	g := &Generator{stream: cfg.stream, now: cfg.now, table: cfg.table}
	if g.stream == nil {
		if cfg.seeded {
			g.stream = digits.NewSeeded(cfg.seed)
		} else {
			g.stream = digits.New()
		}
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.table == nil {
		g.table = locales.MustLoad(cfg.locale)
	}
	return g
}
