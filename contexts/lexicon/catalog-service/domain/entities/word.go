package entities

import "time"

// Meaning is one translation of a word into a target language.
type Meaning struct {
	LanguageID string `json:"language_id"`
	Meaning    string `json:"meaning"`
}

// Word is never deleted. Meanings may repeat and carry no ordering guarantee.
type Word struct {
	WordID         string
	Text           string
	LanguageID     string
	Meanings       []Meaning
	CreatedBy      string
	LastModifiedBy string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LanguageIDs returns the word language followed by every distinct meaning language.
func (w Word) LanguageIDs() []string {
	seen := map[string]struct{}{w.LanguageID: {}}
	ids := []string{w.LanguageID}
	for _, meaning := range w.Meanings {
		if _, ok := seen[meaning.LanguageID]; ok {
			continue
		}
		seen[meaning.LanguageID] = struct{}{}
		ids = append(ids, meaning.LanguageID)
	}
	return ids
}
