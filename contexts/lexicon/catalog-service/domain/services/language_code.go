package services

import "strings"

// NormalizeLanguageCode accepts a two-letter ISO 639-1 code in any case.
func NormalizeLanguageCode(raw string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if len(code) != 2 {
		return "", false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return code, true
}
