package gausslog

import (
	"strconv"
	"strings"
)

// ParseFloat decodes one numeric token as printed by Gaussian. Besides
// standard notation it accepts the Fortran exponent marker, so
// "1.23D+04" decodes to 12300.0, and exponents whose marker was dropped
// by the fixed-width formatter, as in "1.23-04".
func ParseFloat(tok string) (float64, error) {
	norm := normalizeExponent(tok)
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, &MalformedNumberError{Token: tok}
	}
	return v, nil
}

func normalizeExponent(tok string) string {
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case 'D', 'd':
			return tok[:i] + "e" + tok[i+1:]
		case 'E', 'e':
			return tok
		case '+', '-':
			if i > 0 && isDigitOrDot(tok[i-1]) {
				return tok[:i] + "e" + tok[i:]
			}
		}
	}
	return tok
}

func isDigitOrDot(c byte) bool {
	return c == '.' || (c >= '0' && c <= '9')
}

// ParseFloatFields decodes every numeric token on a line. Fixed-width
// fields can leave a negative value glued to the digit before it, as in
// "-0.123456-1.234567"; such runs are split at the interior sign before
// decoding.
func ParseFloatFields(s string) ([]float64, error) {
	var vals []float64
	for _, field := range strings.Fields(s) {
		for _, tok := range splitGlued(field) {
			v, err := ParseFloat(tok)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// splitGlued cuts a field at each interior sign that starts a new
// number rather than an exponent. A sign is an exponent sign only when
// the previous byte is an exponent marker.
func splitGlued(field string) []string {
	var parts []string
	start := 0
	for i := 1; i < len(field); i++ {
		c := field[i]
		if c != '+' && c != '-' {
			continue
		}
		prev := field[i-1]
		if prev == 'e' || prev == 'E' || prev == 'd' || prev == 'D' {
			continue
		}
		// An exponent like "1.23-04" keeps its sign: only split when
		// the tail contains a decimal point of its own.
		if strings.IndexByte(field[i:], '.') < 0 {
			continue
		}
		parts = append(parts, field[start:i])
		start = i
	}
	return append(parts, field[start:])
}
