package shared

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"identity-api/internal/domain/domainerr"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a normalized address. The zero value means "no email".
type Email string

func normalizeEmail(raw string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(raw)))
}

func ParseEmail(raw string) (Email, error) {
	normalized := normalizeEmail(raw)
	if !emailRe.MatchString(normalized) {
		return "", domainerr.Validation("Invalid email address")
	}

	return Email(normalized), nil
}

// UnsafeEmail normalizes without validating; use only for stored values.
func UnsafeEmail(raw string) Email { return Email(normalizeEmail(raw)) }

func IsEmail(s string) bool { return emailRe.MatchString(s) }

func (e Email) String() string { return string(e) }
func (e Email) IsZero() bool   { return e == "" }
