package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type CreateWordCommand struct {
	Actor      ports.Actor
	Text       string
	LanguageID string
	Meanings   []entities.Meaning
}

// CreateWordUseCase stores a new word and then records an "add" contribution.
// Identical word/language pairs are not deduplicated.
type CreateWordUseCase struct {
	Languages     ports.LanguageRepository
	Words         ports.WordRepository
	Contributions ports.ContributionRecorder
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (u CreateWordUseCase) Execute(ctx context.Context, cmd CreateWordCommand) (entities.Word, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Actor.UserID) == "" {
		return entities.Word{}, domainerrors.ErrInvalidActor
	}

	meanings := cmd.Meanings
	if meanings == nil {
		meanings = []entities.Meaning{}
	}
	word := entities.Word{
		Text:       cmd.Text,
		LanguageID: strings.TrimSpace(cmd.LanguageID),
		Meanings:   meanings,
	}
	if err := validateWordShape(word); err != nil {
		return entities.Word{}, err
	}
	if err := ensureLanguagesExist(ctx, u.Languages, word); err != nil {
		return entities.Word{}, err
	}

	wordID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Word{}, err
	}
	now := u.now()
	word.WordID = wordID
	word.CreatedBy = cmd.Actor.UserID
	word.LastModifiedBy = cmd.Actor.UserID
	word.CreatedAt = now
	word.UpdatedAt = now

	if err := u.Words.CreateWord(ctx, word); err != nil {
		return entities.Word{}, err
	}

	details, err := json.Marshal(map[string]string{"word": word.Text})
	if err != nil {
		return entities.Word{}, err
	}
	if err := u.Contributions.RecordContribution(ctx, ports.ContributionRecord{
		UserID:        cmd.Actor.UserID,
		WordID:        word.WordID,
		Type:          ports.ContributionTypeAdd,
		Details:       details,
		ObservedCount: cmd.Actor.ContributionCount,
	}); err != nil {
		logger.Error("contribution record failed after word create",
			"event", "catalog_word_create_ledger_failed",
			"module", "lexicon/catalog-service",
			"layer", "application",
			"word_id", word.WordID,
			"user_id", cmd.Actor.UserID,
			"error", err.Error(),
		)
		return entities.Word{}, err
	}

	logger.Info("word created",
		"event", "catalog_word_created",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"word_id", word.WordID,
		"language_id", word.LanguageID,
		"user_id", cmd.Actor.UserID,
	)
	return word, nil
}

func (u CreateWordUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
