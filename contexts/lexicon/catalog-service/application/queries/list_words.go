package queries

import (
	"context"
	"log/slog"
	"strings"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type ListWordsQuery struct {
	LanguageID string
	Search     string
}

// ListWordsUseCase matches Search anywhere in the word text, case-insensitively.
type ListWordsUseCase struct {
	Words  ports.WordRepository
	Logger *slog.Logger
}

func (u ListWordsUseCase) Execute(ctx context.Context, query ListWordsQuery) ([]entities.Word, error) {
	items, err := u.Words.ListWords(ctx, ports.WordFilter{
		LanguageID: strings.TrimSpace(query.LanguageID),
		Contains:   query.Search,
		Limit:      services.MaxListResults,
	})
	if err != nil {
		return nil, err
	}
	application.ResolveLogger(u.Logger).Debug("words listed",
		"event", "catalog_words_listed",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"language_id", query.LanguageID,
		"count", len(items),
	)
	return items, nil
}
