package idnumber

import "strings"

// FormatCPF renders an eleven-digit CPF as DDD.DDD.DDD-DD. Values that are
// not eleven digits after separator removal are returned unchanged.
func FormatCPF(cpf string) string {
	cleaned := stripSeparators(cpf)
	if len(cleaned) != 11 || !allDigits(cleaned) {
		return cpf
	}
	return cleaned[:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:]
}

// FormatRG renders an RG as D{1,2}.DDD.DDD-C, grouping from the right so
// seven- and eight-digit bases punctuate the same way. Values outside
// those shapes are returned unchanged.
func FormatRG(rg string) string {
	cleaned := strings.ToUpper(stripSeparators(rg))
	if len(cleaned) != 8 && len(cleaned) != 9 {
		return rg
	}
	base, check := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1]
	if !allDigits(base) || !isIDCheckChar(check) {
		return rg
	}
	n := len(base)
	return base[:n-6] + "." + base[n-6:n-3] + "." + base[n-3:] + "-" + string(check)
}

// FormatANATEL renders an ANATEL registration as DDDDD-C. Values that are
// not five digits plus a check character are returned unchanged.
func FormatANATEL(id string) string {
	cleaned := strings.ToUpper(stripSeparators(id))
	if len(cleaned) != 6 {
		return id
	}
	base, check := cleaned[:5], cleaned[5]
	if !allDigits(base) || !isIDCheckChar(check) {
		return id
	}
	return base + "-" + string(check)
}

// stripSeparators removes the separator characters used by the formatted
// identifier forms: dots, dashes and spaces.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', ' ':
			return -1
		default:
			return r
		}
	}, s)
}

// allDigits reports whether s is non-empty and contains only 0-9.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isIDCheckChar reports whether c can close an RG or ANATEL number: a
// digit, or the X written for a mod-11 difference of ten.
func isIDCheckChar(c byte) bool {
	return c == 'X' || (c >= '0' && c <= '9')
}
