package queries

import (
	"context"
	"log/slog"
	"strings"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type SearchWordsQuery struct {
	Word         string
	FromLanguage string
	ToLanguage   string
}

// SearchWordsUseCase is a prefix lookup. The result cap applies before the
// target-language narrowing, so fewer than the cap may come back.
type SearchWordsUseCase struct {
	Words  ports.WordRepository
	Logger *slog.Logger
}

func (u SearchWordsUseCase) Execute(ctx context.Context, query SearchWordsQuery) ([]entities.Word, error) {
	if query.Word == "" {
		return nil, domainerrors.ErrInvalidSearchQuery
	}

	items, err := u.Words.SearchWords(ctx, ports.SearchFilter{
		Prefix:     query.Word,
		LanguageID: strings.TrimSpace(query.FromLanguage),
		Limit:      services.MaxSearchResults,
	})
	if err != nil {
		return nil, err
	}
	if target := strings.TrimSpace(query.ToLanguage); target != "" {
		items = services.RestrictMeanings(items, target)
	}

	application.ResolveLogger(u.Logger).Debug("words searched",
		"event", "catalog_words_searched",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"from_language", query.FromLanguage,
		"to_language", query.ToLanguage,
		"count", len(items),
	)
	return items, nil
}
