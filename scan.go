package flatfield

import (
	"strconv"
	"strings"
	"unicode"
)

// Tolerant numeric scanning: numeric columns coerce the longest leading
// numeric run of the raw text and ignore whatever trails it, so "123abc"
// is 123 and "12.5x" is 12.5. Text with no leading numeric run at all
// coerces to zero rather than failing. scanInt and scanFloat report that
// zero-by-default case through their ok result; a numeric run that
// overflows the target type is the one condition that surfaces an error.

// numericPrefix returns the longest prefix of s that forms a number:
// an optional sign and a digit run, plus a fraction and exponent when
// float is set. It returns "" when s carries no digits at all.
func numericPrefix(s string, float bool) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if !float {
		if digits == 0 {
			return ""
		}
		return s[:i]
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		// A bare "." is not a number; "12." and ".5" are.
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			exp++
		}
		// "1e5" has an exponent; "1e" and "1e+" stop after the digits.
		if exp > 0 {
			i = j
		}
	}
	return s[:i]
}

// scanInt coerces the leading integer run of s, ignoring leading
// whitespace. ok is false when s carries no digits and the zero result is
// a default rather than a parsed value.
func scanInt(s string) (int64, bool, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	p := numericPrefix(s, false)
	if p == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(p, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// scanFloat coerces the leading decimal run of s, ignoring leading
// whitespace. ok is false when s carries no digits and the zero result is
// a default rather than a parsed value.
func scanFloat(s string) (float64, bool, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	p := numericPrefix(s, true)
	if p == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}
