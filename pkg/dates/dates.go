package dates

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/idnumber/pkg/digits"
)

// Date is a calendar date without a time-of-day component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// YYMMDD renders the date as six digits with a two-digit year, the layout
// used by birth-date-prefixed identifiers.
func (d Date) YYMMDD() string {
	return fmt.Sprintf("%02d%02d%02d", d.Year%100, d.Month, d.Day)
}

// String renders the date as ISO 8601 (YYYY-MM-DD).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Past returns a uniformly random date between now minus withinYears years
// and yesterday. Panics if withinYears is not positive.
func Past(s *digits.Stream, now time.Time, withinYears int) Date {
	if withinYears <= 0 {
		panic(fmt.Sprintf("dates: Past called with withinYears %d", withinYears))
	}

	earliest := now.AddDate(-withinYears, 0, 0)
	span := int(now.Sub(earliest).Hours() / 24)
	return fromTime(now.AddDate(0, 0, -s.Between(1, span)))
}

// Birthday returns a random date of birth for an age between minAge and
// maxAge inclusive, relative to now. Panics if the age bounds are negative
// or inverted.
func Birthday(s *digits.Stream, now time.Time, minAge, maxAge int) Date {
	if minAge < 0 || minAge > maxAge {
		panic(fmt.Sprintf("dates: Birthday called with age bounds [%d, %d]", minAge, maxAge))
	}

	// Anyone aged exactly maxAge was born after this day a year earlier.
	earliest := now.AddDate(-maxAge-1, 0, 1)
	latest := now.AddDate(-minAge, 0, 0)
	span := int(latest.Sub(earliest).Hours() / 24)
	return fromTime(earliest.AddDate(0, 0, s.Between(0, span)))
}

func fromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
