package sms

import "strings"

// NormalizeNumber canonicalizes a phone number to international format:
// surrounding whitespace is trimmed and a leading "+" is prefixed when
// missing. Returns false for an empty number.
func NormalizeNumber(number string) (string, bool) {
	n := strings.TrimSpace(number)
	if n == "" {
		return "", false
	}
	if !strings.HasPrefix(n, "+") {
		n = "+" + n
	}
	return n, true
}

// IsPlausibleNumber reports whether a normalized number looks like a
// dialable international number: a "+" followed by at least seven digits.
func IsPlausibleNumber(number string) bool {
	if !strings.HasPrefix(number, "+") {
		return false
	}
	digits := number[1:]
	if len(digits) < 7 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
