package digits

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Stream is a seedable source of random decimal digits and bounded integers.
// The zero value is not usable; construct one with New or NewSeeded.
type Stream struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Stream seeded from the wall clock.
func New() *Stream {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Stream that replays the same draw sequence for the
// same seed.
func NewSeeded(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Reseed resets the stream to the beginning of the sequence for seed.
func (s *Stream) Reseed(seed int64) {
	s.mu.Lock()
	s.r = rand.New(rand.NewSource(seed))
	s.mu.Unlock()
}

// Digits returns a string of exactly n random decimal digits. Leading zeros
// are as likely as any other digit, so the result has string semantics, not
// numeric ones. Returns "" when n <= 0.
func (s *Stream) Digits(n int) string {
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)

	s.mu.Lock()
	for range n {
		b.WriteByte('0' + byte(s.r.Intn(10)))
	}
	s.mu.Unlock()

	return b.String()
}

// Between returns a uniformly distributed integer in [lo, hi], inclusive of
// both bounds. Panics if lo > hi.
func (s *Stream) Between(lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("digits: Between called with lo (%d) > hi (%d)", lo, hi))
	}

	s.mu.Lock()
	n := s.r.Intn(hi-lo+1)
	s.mu.Unlock()

	return lo + n
}

// Intn returns a uniformly distributed integer in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	s.mu.Lock()
	v := s.r.Intn(n)
	s.mu.Unlock()
	return v
}

// Pick returns a uniformly chosen element of items. Panics if items is empty.
func Pick[T any](s *Stream, items []T) T {
	if len(items) == 0 {
		panic("digits: Pick called with no items")
	}
	return items[s.Intn(len(items))]
}
