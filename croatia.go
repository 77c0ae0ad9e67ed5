package idnumber

import "strings"

// oibPrefix opens the international form used on cross-border documents.
const oibPrefix = "HR"

// OIB returns an eleven-digit Croatian personal identification number:
// ten random digits plus the ISO 7064 MOD 11,10 check digit.
func (g *Generator) OIB() string {
	num := g.stream.Digits(10)
	return num + string(oibCheckDigit(num))
}

// InternationalOIB returns the OIB with the HR country prefix, thirteen
// characters in all.
func (g *Generator) InternationalOIB() string {
	return oibPrefix + g.OIB()
}

// ValidOIB reports whether value is a Croatian OIB with a correct check
// digit, with or without the HR prefix. Separators are ignored.
func ValidOIB(value string) bool {
	cleaned := strings.TrimPrefix(stripSeparators(value), oibPrefix)
	if len(cleaned) != 11 || !allDigits(cleaned) {
		return false
	}
	return oibCheckDigit(cleaned[:10]) == cleaned[10]
}

// oibCheckDigit threads one control sum through the digits left to right;
// the carried state makes the result order-dependent, unlike the aggregate
// sums of the other schemes.
func oibCheckDigit(num string) byte {
	control := 10
	for i := 0; i < len(num); i++ {
		control += int(num[i] - '0')
		control %= 10
		if control == 0 {
			control = 10
		}
		control = control * 2 % 11
	}
	return '0' + byte((11-control)%10)
}
