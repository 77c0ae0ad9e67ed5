// Package dates draws random calendar dates from a digits.Stream, for
// identifier schemes that embed a birth date. Dates are plain
// year/month/day triples; no time zone or clock component is involved.
package dates
