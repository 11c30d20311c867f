package service

import "strings"

// NormalizePhone reduces a phone number to its local matching key: strip
// everything but digits, then rewrite the international 62 prefix (with or
// without a leading +) to the local leading zero. "+6281234567890",
// "6281234567890" and "081234567890" all normalize to "081234567890".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "62") {
		digits = "0" + digits[2:]
	}
	return digits
}
