package queries

import (
	"context"
	"log/slog"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type ListLanguagesUseCase struct {
	Languages ports.LanguageRepository
	Logger    *slog.Logger
}

func (u ListLanguagesUseCase) Execute(ctx context.Context) ([]entities.Language, error) {
	items, err := u.Languages.ListLanguages(ctx, services.MaxListResults)
	if err != nil {
		return nil, err
	}
	application.ResolveLogger(u.Logger).Debug("languages listed",
		"event", "catalog_languages_listed",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"count", len(items),
	)
	return items, nil
}
