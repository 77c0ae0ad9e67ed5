package digits_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber/pkg/digits"
)

func TestDigits(t *testing.T) {
	t.Parallel()

	t.Run("exact length and digit alphabet", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(1)
		for _, n := range []int{1, 2, 8, 9, 13, 40} {
			got := s.Digits(n)
			require.Len(t, got, n)
			for i := 0; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i], byte('0'))
				assert.LessOrEqual(t, got[i], byte('9'))
			}
		}
	})

	t.Run("empty for non-positive length", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(1)
		assert.Empty(t, s.Digits(0))
		assert.Empty(t, s.Digits(-3))
	})

	t.Run("preserves leading zeros", func(t *testing.T) {
		t.Parallel()

		// With enough draws a leading zero must appear; the draw being a
		// string, it must survive into the result.
		s := digits.NewSeeded(7)
		found := false
		for range 200 {
			if s.Digits(4)[0] == '0' {
				found = true
				break
			}
		}
		assert.True(t, found, "expected at least one leading zero in 200 draws")
	})
}

func TestSeededReproducibility(t *testing.T) {
	t.Parallel()

	a := digits.NewSeeded(99)
	b := digits.NewSeeded(99)
	for range 50 {
		assert.Equal(t, a.Digits(6), b.Digits(6))
		assert.Equal(t, a.Between(0, 99999), b.Between(0, 99999))
	}

	t.Run("reseed restarts the sequence", func(t *testing.T) {
		s := digits.NewSeeded(42)
		first := s.Digits(10)
		s.Digits(10)
		s.Reseed(42)
		assert.Equal(t, first, s.Digits(10))
	})
}

func TestBetween(t *testing.T) {
	t.Parallel()

	t.Run("inclusive of both bounds", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(3)
		seen := make(map[int]bool)
		for range 500 {
			v := s.Between(0, 2)
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, 2)
			seen[v] = true
		}
		assert.Len(t, seen, 3, "all values of a tiny range should appear")
	})

	t.Run("single-value range", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(3)
		assert.Equal(t, 7, s.Between(7, 7))
	})

	t.Run("panics on inverted bounds", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(3)
		assert.Panics(t, func() { s.Between(5, 4) })
	})
}

func TestPick(t *testing.T) {
	t.Parallel()

	t.Run("covers all items", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(11)
		items := []string{"X", "Y", "Z"}
		seen := make(map[string]bool)
		for range 300 {
			seen[digits.Pick(s, items)] = true
		}
		assert.Len(t, seen, len(items))
	})

	t.Run("panics on empty slice", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(11)
		assert.Panics(t, func() { digits.Pick(s, []int(nil)) })
	})
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	s := digits.New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				got := s.Digits(9)
				if len(got) != 9 {
					t.Errorf("Digits(9) returned %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
