package entities

import "time"

// Language is immutable once created. Code is a lower-case ISO 639-1 code.
type Language struct {
	LanguageID string
	Name       string
	Code       string
	NativeName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
