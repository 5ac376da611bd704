package commands

import (
	"bytes"
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

// UpdateWordCommand carries the raw JSON object submitted by the client.
// Only "word" and "meanings" are applied; other keys are ignored but still
// recorded in the contribution details.
type UpdateWordCommand struct {
	Actor   ports.Actor
	WordID  string
	Payload json.RawMessage
}

type UpdateWordUseCase struct {
	Languages     ports.LanguageRepository
	Words         ports.WordRepository
	Contributions ports.ContributionRecorder
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (u UpdateWordUseCase) Execute(ctx context.Context, cmd UpdateWordCommand) (entities.Word, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Actor.UserID) == "" {
		return entities.Word{}, domainerrors.ErrInvalidActor
	}

	fields, err := decodeUpdatePayload(cmd.Payload)
	if err != nil {
		return entities.Word{}, err
	}

	word, err := u.Words.GetWord(ctx, strings.TrimSpace(cmd.WordID))
	if err != nil {
		return entities.Word{}, err
	}

	if raw, ok := fields["word"]; ok {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return entities.Word{}, domainerrors.ErrInvalidWordInput
		}
		word.Text = text
	}
	if raw, ok := fields["meanings"]; ok {
		var meanings []entities.Meaning
		if err := json.Unmarshal(raw, &meanings); err != nil {
			return entities.Word{}, domainerrors.ErrInvalidWordInput
		}
		if meanings == nil {
			meanings = []entities.Meaning{}
		}
		word.Meanings = meanings
	}
	if err := validateWordShape(word); err != nil {
		return entities.Word{}, err
	}
	if err := ensureLanguagesExist(ctx, u.Languages, word); err != nil {
		return entities.Word{}, err
	}

	word.LastModifiedBy = cmd.Actor.UserID
	word.UpdatedAt = u.now()
	if err := u.Words.UpdateWord(ctx, word); err != nil {
		return entities.Word{}, err
	}

	if err := u.Contributions.RecordContribution(ctx, ports.ContributionRecord{
		UserID:        cmd.Actor.UserID,
		WordID:        word.WordID,
		Type:          ports.ContributionTypeEdit,
		Details:       append(json.RawMessage(nil), cmd.Payload...),
		ObservedCount: cmd.Actor.ContributionCount,
	}); err != nil {
		logger.Error("contribution record failed after word update",
			"event", "catalog_word_update_ledger_failed",
			"module", "lexicon/catalog-service",
			"layer", "application",
			"word_id", word.WordID,
			"user_id", cmd.Actor.UserID,
			"error", err.Error(),
		)
		return entities.Word{}, err
	}

	logger.Info("word updated",
		"event", "catalog_word_updated",
		"module", "lexicon/catalog-service",
		"layer", "application",
		"word_id", word.WordID,
		"user_id", cmd.Actor.UserID,
		"applied_fields", appliedFields(fields),
	)
	return word, nil
}

func decodeUpdatePayload(payload json.RawMessage) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, domainerrors.ErrInvalidWordInput
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, domainerrors.ErrInvalidWordInput
	}
	return fields, nil
}

func appliedFields(fields map[string]json.RawMessage) []string {
	applied := make([]string, 0, 2)
	for _, key := range []string{"word", "meanings"} {
		if _, ok := fields[key]; ok {
			applied = append(applied, key)
		}
	}
	return applied
}

func (u UpdateWordUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
