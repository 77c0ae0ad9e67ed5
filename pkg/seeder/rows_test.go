package seeder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idnumber"
	"github.com/dmitrymomot/idnumber/pkg/seeder"
)

func TestRows(t *testing.T) {
	t.Parallel()

	t.Run("formatted schemes carry both renderings", func(t *testing.T) {
		t.Parallel()

		gen := idnumber.New(idnumber.WithSeed(1))
		rows, err := seeder.Rows(gen, "cpf", 10)
		require.NoError(t, err)
		require.Len(t, rows, 10)

		for _, row := range rows {
			assert.Equal(t, "cpf", row.Scheme)
			assert.True(t, idnumber.ValidCPF(row.Value), "cpf %s", row.Value)
			assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, row.Formatted)
			assert.Equal(t, idnumber.FormatCPF(row.Value), row.Formatted)
		}
	})

	t.Run("plain schemes leave formatted empty", func(t *testing.T) {
		t.Parallel()

		gen := idnumber.New(idnumber.WithSeed(2))
		rows, err := seeder.Rows(gen, "rut", 5)
		require.NoError(t, err)
		require.Len(t, rows, 5)

		for _, row := range rows {
			assert.True(t, idnumber.ValidRUT(row.Value), "rut %s", row.Value)
			assert.Empty(t, row.Formatted)
		}
	})

	t.Run("unknown scheme", func(t *testing.T) {
		t.Parallel()

		gen := idnumber.New(idnumber.WithSeed(3))
		_, err := seeder.Rows(gen, "passport", 1)
		assert.ErrorIs(t, err, idnumber.ErrUnknownScheme)
	})

	t.Run("zero count", func(t *testing.T) {
		t.Parallel()

		gen := idnumber.New(idnumber.WithSeed(4))
		rows, err := seeder.Rows(gen, "oib", 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
