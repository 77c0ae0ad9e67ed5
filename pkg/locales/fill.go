package locales

import (
	"strings"

	"github.com/dmitrymomot/idnumber/pkg/digits"
)

// Fill expands a pattern template into a concrete string using draws from
// s. Each `#` becomes one random digit and each `[a-b]` token (both bounds
// digits) becomes one digit from that inclusive range; every other
// character, including malformed bracket tokens, is copied through
// untouched.
func Fill(tpl string, s *digits.Stream) string {
	var b strings.Builder
	b.Grow(len(tpl))

	for i := 0; i < len(tpl); i++ {
		c := tpl[i]
		switch {
		case c == '#':
			b.WriteByte('0' + byte(s.Intn(10)))
		case c == '[' && i+4 < len(tpl) && isDigit(tpl[i+1]) && tpl[i+2] == '-' && isDigit(tpl[i+3]) && tpl[i+4] == ']':
			lo, hi := int(tpl[i+1]-'0'), int(tpl[i+3]-'0')
			if lo > hi {
				lo, hi = hi, lo
			}
			b.WriteByte('0' + byte(s.Between(lo, hi)))
			i += 4
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
