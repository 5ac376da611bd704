package services

import (
	"net/mail"
	"strings"
)

const (
	MaxUsernameLength = 64
	MinPasswordLength = 1
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

// NormalizeEmail returns the lower-cased bare address, or false when raw is not
// a single RFC 5322 address.
func NormalizeEmail(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}

func ValidUsername(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > MaxUsernameLength || value != raw {
		return false
	}
	return !strings.ContainsAny(value, " \t\r\n")
}

func ValidPassword(raw string) bool {
	return len(raw) >= MinPasswordLength && len(raw) <= MaxPasswordLength
}
