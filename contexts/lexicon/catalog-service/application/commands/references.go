package commands

import (
	"context"
	"errors"
	"strings"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

func validateWordShape(word entities.Word) error {
	if strings.TrimSpace(word.Text) == "" || strings.TrimSpace(word.LanguageID) == "" {
		return domainerrors.ErrInvalidWordInput
	}
	for _, meaning := range word.Meanings {
		if strings.TrimSpace(meaning.LanguageID) == "" || strings.TrimSpace(meaning.Meaning) == "" {
			return domainerrors.ErrInvalidWordInput
		}
	}
	return nil
}

// ensureLanguagesExist rejects words pointing at unknown languages.
func ensureLanguagesExist(ctx context.Context, languages ports.LanguageRepository, word entities.Word) error {
	for _, languageID := range word.LanguageIDs() {
		if _, err := languages.GetLanguage(ctx, languageID); err != nil {
			if errors.Is(err, domainerrors.ErrLanguageNotFound) {
				return domainerrors.ErrInvalidReference
			}
			return err
		}
	}
	return nil
}
