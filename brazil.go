package idnumber

import (
	"fmt"
	"strconv"
	"strings"
)

// idCheckOverrides substitutes the two out-of-range differences of the
// RG/ANATEL digit mapping, mirroring the scheme's published table.
var idCheckOverrides = map[int]byte{10: 'X', 11: '0'}

// CPF returns an eleven-digit Brazilian citizen number (Cadastro de
// Pessoas Físicas): a nine-digit block holding at least two distinct
// digits plus two check digits. Use FormatCPF for the DDD.DDD.DDD-DD form.
func (g *Generator) CPF() string {
	// Blocks of one repeated digit produce the classic always-rejected
	// numbers (111.111.111-11 and friends) despite carrying consistent
	// check digits, so redraw until two digits differ.
	block := g.stream.Digits(9)
	for attempt := 0; allSameDigits(block) && attempt < maxAttempts; attempt++ {
		block = g.stream.Digits(9)
	}
	if allSameDigits(block) {
		// Pathological stream: force a second distinct digit instead of
		// sampling further.
		b := []byte(block)
		b[8] = '0' + (b[8]-'0'+byte(g.stream.Between(1, 9)))%10
		block = string(b)
	}

	d1 := citizenNumberDigit(brazilianChecksum(block) % 11)
	withFirst := block + string(d1)
	d2 := citizenNumberDigit(brazilianChecksum(withFirst) % 11)
	return withFirst + string(d2)
}

// RG returns a Brazilian state identity number (Registro Geral): eight
// digits and a check character that may be X. Use FormatRG for the
// DD.DDD.DDD-C form.
func (g *Generator) RG() string {
	num := strconv.Itoa(g.stream.Between(10_000_000, 99_999_999))
	return num + string(idCheckChar(num))
}

// ANATEL returns a Brazilian telecom-agency registration number: five
// digits, zero-padded, and a check character that may be X. Use
// FormatANATEL for the DDDDD-C form.
func (g *Generator) ANATEL() string {
	num := fmt.Sprintf("%05d", g.stream.Between(0, 99_999))
	return num + string(idCheckChar(num))
}

// ValidCPF reports whether value is a Brazilian CPF with correct check
// digits and at least two distinct digits in its base block. Dot and dash
// separators are ignored.
func ValidCPF(value string) bool {
	cleaned := stripSeparators(value)
	if len(cleaned) != 11 || !allDigits(cleaned) {
		return false
	}
	if allSameDigits(cleaned[:9]) {
		return false
	}
	return cleaned[9] == citizenNumberDigit(brazilianChecksum(cleaned[:9])%11) &&
		cleaned[10] == citizenNumberDigit(brazilianChecksum(cleaned[:10])%11)
}

// ValidRG reports whether value is an eight-digit RG with a correct check
// character. The check may be lowercase x; separators are ignored.
func ValidRG(value string) bool {
	cleaned := strings.ToUpper(stripSeparators(value))
	if len(cleaned) != 9 {
		return false
	}
	num, check := cleaned[:8], cleaned[8]
	if !allDigits(num) {
		return false
	}
	return idCheckChar(num) == check
}

// ValidANATEL reports whether value is a five-digit ANATEL registration
// with a correct check character. The check may be lowercase x; separators
// are ignored.
func ValidANATEL(value string) bool {
	cleaned := strings.ToUpper(stripSeparators(value))
	if len(cleaned) != 6 {
		return false
	}
	num, check := cleaned[:5], cleaned[5]
	if !allDigits(num) {
		return false
	}
	return idCheckChar(num) == check
}

// brazilianChecksum weights every digit by its distance from the right end
// plus one (the leftmost digit of an n-digit block weighs n+1, the
// rightmost 2), sums the products and scales by ten. Both check-digit
// mappings reduce the result mod 11.
func brazilianChecksum(num string) int {
	sum := 0
	for i := 0; i < len(num); i++ {
		sum += int(num[i]-'0') * (len(num) + 1 - i)
	}
	return sum * 10
}

// citizenNumberDigit maps a checksum remainder for the CPF: remainder ten
// collapses to zero, every other remainder is the digit itself.
func citizenNumberDigit(rem int) byte {
	if rem == 10 {
		return '0'
	}
	return '0' + byte(rem)
}

// idCheckChar computes the RG/ANATEL check character: the difference
// 11 - (checksum mod 11) becomes the digit, with ten written as X and
// eleven collapsing to zero.
func idCheckChar(num string) byte {
	diff := 11 - brazilianChecksum(num)%11
	if c, ok := idCheckOverrides[diff]; ok {
		return c
	}
	return '0' + byte(diff)
}

// allSameDigits reports whether every character of s equals its first.
func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
