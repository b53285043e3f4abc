package services

import (
	"net/mail"
	"strings"
)

// NormEmail lower-cases and trims an email address and reports whether
// it parses. Empty is allowed (optional field).
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", true
	}
	_, err := mail.ParseAddress(e)
	return e, err == nil
}
