package domain

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsEmail reports whether s is a bare address such as "a@b.co".
// Display-name forms like "Ann <a@b.co>" are rejected.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}
