package services

import (
	"strings"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
)

const (
	MaxListResults   = 1000
	MaxSearchResults = 100
)

// ContainsFold is a literal, case-insensitive substring match.
func ContainsFold(text string, needle string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
}

// HasPrefixFold is a literal, case-insensitive prefix match.
func HasPrefixFold(text string, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(text), strings.ToLower(prefix))
}

// RestrictMeanings keeps only the meanings in targetLanguageID and drops words
// that end up with none. The input slice is not modified.
func RestrictMeanings(words []entities.Word, targetLanguageID string) []entities.Word {
	result := make([]entities.Word, 0, len(words))
	for _, word := range words {
		kept := make([]entities.Meaning, 0, len(word.Meanings))
		for _, meaning := range word.Meanings {
			if meaning.LanguageID == targetLanguageID {
				kept = append(kept, meaning)
			}
		}
		if len(kept) == 0 {
			continue
		}
		word.Meanings = kept
		result = append(result, word)
	}
	return result
}
