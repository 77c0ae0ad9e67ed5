package idnumber_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber"
)

func TestDNI(t *testing.T) {
	t.Parallel()

	shape := regexp.MustCompile(`^\d{8}-[TRWAGMYFPDXBNJZSQVHLCKE]$`)

	gen := idnumber.New(idnumber.WithSeed(3))
	for range 500 {
		dni := gen.DNI()
		require.Regexp(t, shape, dni)
		require.True(t, idnumber.ValidDNI(dni), "dni %s", dni)
	}
}

func TestValidDNI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"canonical", "53290236-H", true},
		{"no separator", "53290236H", true},
		{"lowercase letter", "53290236-h", true},
		{"leading zeros", "00000023-T", true},
		{"wrong letter", "53290236-T", false},
		{"seven digits", "5329023-H", false},
		{"nine digits", "532902367-H", false},
		{"letter inside number", "5329O236-H", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, idnumber.ValidDNI(tc.value))
		})
	}
}

func TestNIE(t *testing.T) {
	t.Parallel()

	shape := regexp.MustCompile(`^[XYZ]-\d{7}-[TRWAGMYFPDXBNJZSQVHLCKE]$`)

	gen := idnumber.New(idnumber.WithSeed(5))
	for range 500 {
		nie := gen.NIE()
		require.Regexp(t, shape, nie)
		require.True(t, idnumber.ValidNIE(nie), "nie %s", nie)
	}
}

func TestValidNIE(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		// X stands in for 0, so X-2345678 checksums like the DNI 02345678.
		{"x prefix", "X-2345678-T", true},
		{"y prefix", "Y-0000000-Z", true},
		{"z prefix", "Z-7654321-H", true},
		{"no separators", "X2345678T", true},
		{"lowercase", "x-2345678-t", true},
		{"wrong letter", "X-2345678-Z", false},
		{"letter for wrong prefix", "Y-2345678-T", false},
		{"unknown prefix", "W-2345678-T", false},
		{"six digits", "X-234567-T", false},
		{"eight digits", "X-23456789-T", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, idnumber.ValidNIE(tc.value))
		})
	}
}
