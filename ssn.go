package idnumber

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/idnumber/pkg/digits"
	"github.com/dmitrymomot/idnumber/pkg/locales"
)

// Template-table keys for the SSN patterns.
const (
	ssnValidKey   = "ssn.valid"
	ssnInvalidKey = "ssn.invalid"
)

// Fallback templates mirror the shipped en table so generation still works
// with a custom table that lacks the ssn keys.
var (
	ssnValidFallback   = "[0-8]##-##-####"
	ssnInvalidFallback = []string{
		"000-##-####",
		"###-00-####",
		"###-##-0000",
		"666-##-####",
		"9##-##-####",
	}
)

// forbiddenSSNPatterns match the number classes the SSA never issues: a
// zero area, group or serial, area 666 and areas 900-999.
var forbiddenSSNPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^000-\d{2}-\d{4}$`),
	regexp.MustCompile(`^\d{3}-00-\d{4}$`),
	regexp.MustCompile(`^\d{3}-\d{2}-0000$`),
	regexp.MustCompile(`^666-\d{2}-\d{4}$`),
	regexp.MustCompile(`^9\d{2}-\d{2}-\d{4}$`),
}

// SSN returns a US Social Security Number in the DDD-DD-DDDD form that
// avoids every never-issued pattern.
func (g *Generator) SSN() string {
	tpl, err := g.table.Template(ssnValidKey)
	if err != nil {
		tpl = ssnValidFallback
	}

	// Rejection sampling. The template already pins the first digit to
	// 0-8, leaving roughly a 1.2% chance of hitting a forbidden pattern
	// per draw.
	for range maxAttempts {
		candidate := locales.Fill(tpl, g.stream)
		if !matchesForbiddenSSN(candidate) {
			return candidate
		}
	}

	// The attempts only run out under a pathological stream; keep the
	// no-failure contract by drawing each segment away from the
	// forbidden values directly.
	area := g.stream.Between(1, 898)
	if area >= 666 {
		area++
	}
	return fmt.Sprintf("%03d-%02d-%04d", area, g.stream.Between(1, 99), g.stream.Between(1, 9999))
}

// InvalidSSN returns a well-shaped SSN exhibiting one of the never-issued
// patterns, drawn from the template table.
func (g *Generator) InvalidSSN() string {
	tpls, err := g.table.Templates(ssnInvalidKey)
	if err != nil || len(tpls) == 0 {
		tpls = ssnInvalidFallback
	}
	return locales.Fill(digits.Pick(g.stream, tpls), g.stream)
}

// ValidSSN reports whether value is a Social Security Number the SSA could
// issue. Space and dash separators are ignored.
func ValidSSN(value string) bool {
	cleaned := stripSeparators(value)
	if len(cleaned) != 9 || !allDigits(cleaned) {
		return false
	}

	area, group, serial := cleaned[:3], cleaned[3:5], cleaned[5:]
	switch {
	case area == "000", group == "00", serial == "0000":
		return false
	case area == "666", area[0] == '9':
		return false
	}
	return true
}

func matchesForbiddenSSN(candidate string) bool {
	for _, re := range forbiddenSSNPatterns {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}
