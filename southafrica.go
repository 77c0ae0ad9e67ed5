package idnumber

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/idnumber/pkg/dates"
	"github.com/dmitrymomot/idnumber/pkg/digits"
)

// zaCitizenshipDigits are the values of the citizenship digit: 0 for a
// citizen, 1 for a permanent resident.
var zaCitizenshipDigits = []byte{'0', '1'}

// zaRaceDigit is the fixed value of the historical race indicator carried
// by every number issued today.
const zaRaceDigit = '8'

// SouthAfricanID returns a 13-digit South African identity number: a
// YYMMDD birth date, four sequence digits, a citizenship digit, the fixed
// digit 8 and the check digit.
func (g *Generator) SouthAfricanID() string {
	birth := dates.Birthday(g.stream, g.now(), 18, 65)

	var b strings.Builder
	b.WriteString(birth.YYMMDD())
	b.WriteString(g.stream.Digits(4))
	b.WriteByte(digits.Pick(g.stream, zaCitizenshipDigits))
	b.WriteByte(zaRaceDigit)

	prefix := b.String()
	check, _ := SouthAfricanIDCheckDigit(prefix)
	return prefix + string(check)
}

// InvalidSouthAfricanID returns a 13-digit number whose date block cannot
// be a calendar date: the month lands in 13-99 and the day in 32-99. The
// check digit still matches the first twelve digits, so the number fails
// date validation alone.
func (g *Generator) InvalidSouthAfricanID() string {
	var b strings.Builder
	b.WriteString(g.stream.Digits(2))
	b.WriteString(strconv.Itoa(g.stream.Between(13, 99)))
	b.WriteString(strconv.Itoa(g.stream.Between(32, 99)))
	b.WriteString(g.stream.Digits(4))
	b.WriteByte(digits.Pick(g.stream, zaCitizenshipDigits))
	b.WriteByte(zaRaceDigit)

	prefix := b.String()
	check, _ := SouthAfricanIDCheckDigit(prefix)
	return prefix + string(check)
}

// SouthAfricanIDCheckDigit computes the 13th digit of a South African ID
// number from its first twelve digits. Digits at odd positions (1-based)
// are summed directly; digits at even positions are read together as one
// number, doubled, and the digits of the product summed. The check digit
// is what lifts the total to the next multiple of ten.
func SouthAfricanIDCheckDigit(first12 string) (byte, error) {
	if len(first12) != 12 {
		return 0, fmt.Errorf("%w: want 12 digits, got %d", ErrInvalidLength, len(first12))
	}
	if !allDigits(first12) {
		return 0, ErrInvalidDigit
	}

	sum := 0
	even := 0
	for i := 0; i < len(first12); i++ {
		d := int(first12[i] - '0')
		if (i+1)%2 == 1 {
			sum += d
		} else {
			even = even*10 + d
		}
	}
	for doubled := even * 2; doubled > 0; doubled /= 10 {
		sum += doubled % 10
	}

	return '0' + byte((10-sum%10)%10), nil
}

// ValidSouthAfricanID reports whether value is a 13-digit South African ID
// whose date block is a plausible calendar date and whose 13th digit
// matches the checksum of the first twelve.
func ValidSouthAfricanID(value string) bool {
	cleaned := stripSeparators(value)
	if len(cleaned) != 13 || !allDigits(cleaned) {
		return false
	}

	month := int(cleaned[2]-'0')*10 + int(cleaned[3]-'0')
	day := int(cleaned[4]-'0')*10 + int(cleaned[5]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	check, err := SouthAfricanIDCheckDigit(cleaned[:12])
	if err != nil {
		return false
	}
	return check == cleaned[12]
}
