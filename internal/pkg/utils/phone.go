package utils

import "strings"

// NormalizeLocalPhoneNumber strips everything but digits and keeps the last
// ten, the form the messaging provider expects for Indian numbers.
func NormalizeLocalPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}
