package idnumber

import "fmt"

// Scheme describes one supported identifier scheme: its stable slug, the
// issuing country and the output variants it offers.
type Scheme struct {
	Slug          string // stable identifier used by CLIs and services
	Country       string // ISO 3166-1 alpha-2 country code
	Name          string
	Invalid       bool // offers a deliberately invalid form
	Formatted     bool // offers a grouped-with-separators form
	International bool // offers a country-prefixed form
}

// schemes lists every supported scheme in stable order.
var schemes = []Scheme{
	{Slug: "ssn", Country: "US", Name: "Social Security Number", Invalid: true},
	{Slug: "dni", Country: "ES", Name: "Documento Nacional de Identidad"},
	{Slug: "nie", Country: "ES", Name: "Número de Identidad de Extranjero"},
	{Slug: "za-id", Country: "ZA", Name: "South African ID Number", Invalid: true},
	{Slug: "cpf", Country: "BR", Name: "Cadastro de Pessoas Físicas", Formatted: true},
	{Slug: "rg", Country: "BR", Name: "Registro Geral", Formatted: true},
	{Slug: "anatel", Country: "BR", Name: "ANATEL Registration Number", Formatted: true},
	{Slug: "rut", Country: "CL", Name: "Rol Único Tributario"},
	{Slug: "oib", Country: "HR", Name: "Osobni Identifikacijski Broj", International: true},
}

// Schemes returns the supported schemes in stable order. The returned
// slice is a copy; callers may modify it freely.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// SchemeBySlug returns the scheme registered under slug.
func SchemeBySlug(slug string) (Scheme, bool) {
	for _, sc := range schemes {
		if sc.Slug == slug {
			return sc, true
		}
	}
	return Scheme{}, false
}

// GenerateOptions select a scheme's output variant for Generate. The zero
// value requests the canonical valid form.
type GenerateOptions struct {
	Invalid       bool // deliberately invalid output (SSN, South African ID)
	Formatted     bool // grouped-with-separators output (CPF, RG, ANATEL)
	International bool // country-prefixed output (OIB)
}

// Generate produces one identifier for the scheme registered under slug.
// Unknown slugs return ErrUnknownScheme; options the scheme does not offer
// return ErrUnsupportedOption.
func (g *Generator) Generate(slug string, opts GenerateOptions) (string, error) {
	sc, ok := SchemeBySlug(slug)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownScheme, slug)
	}
	if opts.Invalid && !sc.Invalid {
		return "", fmt.Errorf("%w: %s has no invalid form", ErrUnsupportedOption, slug)
	}
	if opts.Formatted && !sc.Formatted {
		return "", fmt.Errorf("%w: %s has no formatted form", ErrUnsupportedOption, slug)
	}
	if opts.International && !sc.International {
		return "", fmt.Errorf("%w: %s has no international form", ErrUnsupportedOption, slug)
	}

	var value string
	switch slug {
	case "ssn":
		if opts.Invalid {
			value = g.InvalidSSN()
		} else {
			value = g.SSN()
		}
	case "dni":
		value = g.DNI()
	case "nie":
		value = g.NIE()
	case "za-id":
		if opts.Invalid {
			value = g.InvalidSouthAfricanID()
		} else {
			value = g.SouthAfricanID()
		}
	case "cpf":
		value = g.CPF()
	case "rg":
		value = g.RG()
	case "anatel":
		value = g.ANATEL()
	case "rut":
		value = g.RUT()
	case "oib":
		if opts.International {
			value = g.InternationalOIB()
		} else {
			value = g.OIB()
		}
	}

	if opts.Formatted {
		value = Format(slug, value)
	}
	return value, nil
}

// Format renders value in the slug's grouped form. Schemes without a
// separator-grouped form return value unchanged, as do values that do not
// match the scheme's shape.
func Format(slug, value string) string {
	switch slug {
	case "cpf":
		return FormatCPF(value)
	case "rg":
		return FormatRG(value)
	case "anatel":
		return FormatANATEL(value)
	}
	return value
}
