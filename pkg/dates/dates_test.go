package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber/pkg/dates"
	"github.com/dmitrymomot/idnumber/pkg/digits"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestYYMMDD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "240605", dates.Date{Year: 2024, Month: 6, Day: 5}.YYMMDD())
	assert.Equal(t, "991231", dates.Date{Year: 1999, Month: 12, Day: 31}.YYMMDD())
	assert.Equal(t, "000101", dates.Date{Year: 2000, Month: 1, Day: 1}.YYMMDD())
}

func TestPast(t *testing.T) {
	t.Parallel()

	t.Run("always strictly before now and within range", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(5)
		floor := testNow.AddDate(-30, 0, -1)
		for range 500 {
			d := dates.Past(s, testNow, 30)
			got := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
			require.True(t, got.Before(testNow), "date %s should be in the past", d)
			require.True(t, got.After(floor), "date %s older than 30y", d)
		}
	})

	t.Run("panics on non-positive range", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(5)
		assert.Panics(t, func() { dates.Past(s, testNow, 0) })
	})
}

func TestBirthday(t *testing.T) {
	t.Parallel()

	t.Run("age stays within bounds", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(9)
		for range 500 {
			d := dates.Birthday(s, testNow, 18, 65)
			born := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)

			age := testNow.Year() - born.Year()
			if testNow.Month() < born.Month() ||
				(testNow.Month() == born.Month() && testNow.Day() < born.Day()) {
				age--
			}
			require.GreaterOrEqual(t, age, 18, "born %s", d)
			require.LessOrEqual(t, age, 65, "born %s", d)
		}
	})

	t.Run("valid calendar components", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(9)
		for range 200 {
			d := dates.Birthday(s, testNow, 0, 99)
			assert.GreaterOrEqual(t, d.Month, 1)
			assert.LessOrEqual(t, d.Month, 12)
			assert.GreaterOrEqual(t, d.Day, 1)
			assert.LessOrEqual(t, d.Day, 31)
		}
	})

	t.Run("panics on inverted bounds", func(t *testing.T) {
		t.Parallel()

		s := digits.NewSeeded(9)
		assert.Panics(t, func() { dates.Birthday(s, testNow, 30, 20) })
	})
}
