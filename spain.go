package idnumber

import (
	"bytes"
	"strconv"
	"strings"
)

// dniCheckLetters maps a number mod 23 to its control letter, in the order
// published for the Spanish DNI.
const dniCheckLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// niePrefixes are the letters opening a foreigner identity number. The
// index of each letter is the digit it contributes to the checksum input.
var niePrefixes = []byte{'X', 'Y', 'Z'}

// DNI returns a Spanish citizen identity number: eight digits, a dash and
// the mod-23 control letter (DDDDDDDD-L).
func (g *Generator) DNI() string {
	num := g.stream.Digits(8)
	return num + "-" + string(spanishCheckLetter(num))
}

// NIE returns a Spanish foreigner identity number: a prefix letter X, Y or
// Z, seven digits and the control letter (L-DDDDDDD-L). The prefix stands
// in for its index digit (X=0, Y=1, Z=2) during the checksum, so the
// letter is computed over eight digits even though only seven are printed
// and a leading zero in the printed block survives formatting.
func (g *Generator) NIE() string {
	prefix := g.stream.Intn(len(niePrefixes))
	num := g.stream.Digits(7)
	check := spanishCheckLetter(strconv.Itoa(prefix) + num)
	return string(niePrefixes[prefix]) + "-" + num + "-" + string(check)
}

// ValidDNI reports whether value is a Spanish DNI with a correct control
// letter. The letter may be lowercase; dash separators are ignored.
func ValidDNI(value string) bool {
	cleaned := strings.ToUpper(stripSeparators(value))
	if len(cleaned) != 9 {
		return false
	}
	num, letter := cleaned[:8], cleaned[8]
	if !allDigits(num) {
		return false
	}
	return spanishCheckLetter(num) == letter
}

// ValidNIE reports whether value is a Spanish NIE with a correct control
// letter. Letters may be lowercase; dash separators are ignored.
func ValidNIE(value string) bool {
	cleaned := strings.ToUpper(stripSeparators(value))
	if len(cleaned) != 9 {
		return false
	}
	prefix := bytes.IndexByte(niePrefixes, cleaned[0])
	if prefix < 0 {
		return false
	}
	num, letter := cleaned[1:8], cleaned[8]
	if !allDigits(num) {
		return false
	}
	return spanishCheckLetter(strconv.Itoa(prefix)+num) == letter
}

// spanishCheckLetter computes the mod-23 control letter. The input must be
// a digit string; leading zeros are dropped by the numeric interpretation,
// which is exactly the scheme's published rule.
func spanishCheckLetter(num string) byte {
	n, _ := strconv.Atoi(num)
	return dniCheckLetters[n%23]
}
