package commands

import (
	"context"
	"log/slog"
	"time"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

// SeedLanguagesUseCase installs the fixed language set into an empty catalog.
type SeedLanguagesUseCase struct {
	Languages   ports.LanguageRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute returns the number of languages inserted; zero when any already exist.
func (u SeedLanguagesUseCase) Execute(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(u.Logger)

	existing, err := u.Languages.CountLanguages(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logger.Info("language seed skipped",
			"event", "catalog_language_seed_skipped",
			"module", "lexicon/catalog-service",
			"layer", "application",
			"existing", existing,
		)
		return 0, nil
	}

	now := u.now()
	inserted := 0
	for _, language := range services.SeedLanguages() {
		languageID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return inserted, err
		}
		language.LanguageID = languageID
		language.CreatedAt = now
		language.UpdatedAt = now
		if err := u.Languages.CreateLanguage(ctx, language); err != nil {
			return inserted, err
		}
		inserted++
	}

	logger.Info("languages seeded",
		"event", "catalog_languages_seeded",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"count", inserted,
	)
	return inserted, nil
}

func (u SeedLanguagesUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
