package locales_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber/pkg/digits"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

func TestFill(t *testing.T) {
	t.Parallel()

	t.Run("hash expands to a digit", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		out := locales.Fill("###-##-####", s)
		assert.Regexp(t, regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`), out)
	})

	t.Run("range token stays within bounds", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		for range 200 {
			out := locales.Fill("[0-8]", s)
			require.Len(t, out, 1)
			assert.GreaterOrEqual(t, out[0], byte('0'))
			assert.LessOrEqual(t, out[0], byte('8'))
		}
	})

	t.Run("single value range", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		assert.Equal(t, "3", locales.Fill("[3-3]", s))
	})

	t.Run("reversed range bounds are swapped", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		for range 200 {
			out := locales.Fill("[8-2]", s)
			require.Len(t, out, 1)
			assert.GreaterOrEqual(t, out[0], byte('2'))
			assert.LessOrEqual(t, out[0], byte('8'))
		}
	})

	t.Run("literals pass through", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		assert.Equal(t, "SSN 123", locales.Fill("SSN 123", s))
	})

	t.Run("malformed bracket tokens are literal", func(t *testing.T) {
		t.Parallel()

		s := digits.New()
		assert.Equal(t, "[0-8", locales.Fill("[0-8", s))
		assert.Equal(t, "[a-b]", locales.Fill("[a-b]", s))
		assert.Equal(t, "[12-3]", locales.Fill("[12-3]", s))
	})

	t.Run("same seed yields same expansion", func(t *testing.T) {
		t.Parallel()

		first := locales.Fill("[0-8]##-##-####", digits.NewSeeded(42))
		second := locales.Fill("[0-8]##-##-####", digits.NewSeeded(42))
		assert.Equal(t, first, second)
	})
}
