package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type CreateLanguageCommand struct {
	Name       string
	Code       string
	NativeName string
}

// CreateLanguageUseCase adds a language. Callers enforce the moderator/admin gate.
type CreateLanguageUseCase struct {
	Languages   ports.LanguageRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateLanguageUseCase) Execute(ctx context.Context, cmd CreateLanguageCommand) (entities.Language, error) {
	logger := application.ResolveLogger(u.Logger)

	name := strings.TrimSpace(cmd.Name)
	code, ok := services.NormalizeLanguageCode(cmd.Code)
	if name == "" || !ok {
		return entities.Language{}, domainerrors.ErrInvalidLanguageInput
	}

	_, err := u.Languages.GetLanguageByCode(ctx, code)
	switch {
	case err == nil:
		return entities.Language{}, domainerrors.ErrLanguageCodeTaken
	case !errors.Is(err, domainerrors.ErrLanguageNotFound):
		return entities.Language{}, err
	}

	languageID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Language{}, err
	}
	now := u.now()
	language := entities.Language{
		LanguageID: languageID,
		Name:       name,
		Code:       code,
		NativeName: strings.TrimSpace(cmd.NativeName),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Languages.CreateLanguage(ctx, language); err != nil {
		return entities.Language{}, err
	}

	logger.Info("language created",
		"event", "catalog_language_created",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"language_id", language.LanguageID,
		"code", language.Code,
	)
	return language, nil
}

func (u CreateLanguageUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
