package shared

import "github.com/google/uuid"

const canonicalUUIDLen = 36

// IsUUIDv4 accepts only the hyphenated 8-4-4-4-12 form, any letter case.
// uuid.Parse alone would also take urn:uuid:, braced and unhyphenated input.
func IsUUIDv4(s string) bool {
	if len(s) != canonicalUUIDLen {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
