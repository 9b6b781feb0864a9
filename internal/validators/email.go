package validators

import (
	"net/mail"
	"strings"
)

// IsEmail accepts a bare address ("name@host.tld"), not a display form.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}
