package seeder

import (
	"fmt"

	"github.com/dmitrymomot/idnumber"
)

// Rows generates count fixture rows for the scheme registered under slug.
// Schemes with a grouped form also carry their formatted rendering, so the
// fixture table serves both representations from one seeding run.
func Rows(g *idnumber.Generator, slug string, count int) ([]Row, error) {
	sc, ok := idnumber.SchemeBySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", idnumber.ErrUnknownScheme, slug)
	}

	rows := make([]Row, 0, max(count, 0))
	for range count {
		v, err := g.Generate(slug, idnumber.GenerateOptions{})
		if err != nil {
			return nil, err
		}

		row := Row{Scheme: slug, Value: v}
		if sc.Formatted {
			row.Formatted = idnumber.Format(slug, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
