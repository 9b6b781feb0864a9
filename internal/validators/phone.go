package validators

import "strings"

// NormalizePhone keeps digits and a leading '+'. Returns "" when fewer
// than 7 or more than 15 digits remain.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	out := b.String()
	digits := len(strings.TrimPrefix(out, "+"))
	if digits < 7 || digits > 15 {
		return ""
	}
	return out
}
