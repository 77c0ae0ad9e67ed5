package idnumber

import "strings"

// rutWeights are the fixed multipliers applied to the eight digits of a
// RUT, leftmost first.
var rutWeights = [8]int{3, 2, 7, 6, 5, 4, 3, 2}

// rutCheckOverrides substitutes the two out-of-range differences of the
// mod-11 verification code: ten is written K, eleven collapses to zero.
var rutCheckOverrides = map[int]byte{10: 'K', 11: '0'}

// RUT returns a Chilean taxpayer number: eight digits, a dash and the
// mod-11 verification code (DDDDDDDD-V), where V may be K.
func (g *Generator) RUT() string {
	num := g.stream.Digits(8)
	return num + "-" + string(rutVerificationCode(num))
}

// ValidRUT reports whether value is a Chilean RUT with a correct
// verification code. The code may be lowercase k; dot and dash separators
// are ignored.
func ValidRUT(value string) bool {
	cleaned := strings.ToUpper(stripSeparators(value))
	if len(cleaned) != 9 {
		return false
	}
	num, code := cleaned[:8], cleaned[8]
	if !allDigits(num) {
		return false
	}
	return rutVerificationCode(num) == code
}

// rutVerificationCode computes the verification code over exactly eight
// digits.
func rutVerificationCode(num string) byte {
	sum := 0
	for i := 0; i < len(num); i++ {
		sum += int(num[i]-'0') * rutWeights[i]
	}
	diff := 11 - sum%11
	if c, ok := rutCheckOverrides[diff]; ok {
		return c
	}
	return '0' + byte(diff)
}
