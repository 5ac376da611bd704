package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "lexicon/contexts/lexicon/contribution-ledger/application"
	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"
	domainerrors "lexicon/contexts/lexicon/contribution-ledger/domain/errors"
	"lexicon/contexts/lexicon/contribution-ledger/domain/services"
	"lexicon/contexts/lexicon/contribution-ledger/ports"
)

// RecordContributionCommand is issued once per successful word write.
// ObservedCount is the author's contribution count read before the write.
type RecordContributionCommand struct {
	UserID        string
	WordID        string
	Type          entities.ContributionType
	Details       json.RawMessage
	ObservedCount int
}

type RecordContributionResult struct {
	Contribution entities.Contribution
	RankAdvanced bool
}

// RecordContributionUseCase appends the entry, then advances the counters.
// The three writes are not transactional and are not retried.
type RecordContributionUseCase struct {
	Contributions ports.ContributionRepository
	Counters      ports.CounterStore
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (u RecordContributionUseCase) Execute(ctx context.Context, cmd RecordContributionCommand) (RecordContributionResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.UserID) == "" || strings.TrimSpace(cmd.WordID) == "" {
		return RecordContributionResult{}, domainerrors.ErrInvalidContribution
	}
	if !cmd.Type.Recordable() {
		return RecordContributionResult{}, domainerrors.ErrUnsupportedContributionType
	}
	if len(cmd.Details) == 0 || !json.Valid(cmd.Details) {
		return RecordContributionResult{}, domainerrors.ErrInvalidContribution
	}

	contributionID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RecordContributionResult{}, err
	}
	now := u.now()
	contribution := entities.Contribution{
		ContributionID: contributionID,
		UserID:         cmd.UserID,
		WordID:         cmd.WordID,
		Type:           cmd.Type,
		Details:        append(json.RawMessage(nil), cmd.Details...),
		CreatedAt:      now,
	}
	if err := u.Contributions.AppendContribution(ctx, contribution); err != nil {
		return RecordContributionResult{}, err
	}

	if err := u.Counters.IncrementContributionCount(ctx, cmd.UserID, now); err != nil {
		logger.Error("contribution count increment failed",
			"event", "ledger_count_increment_failed",
			"module", "lexicon/contribution-ledger",
			"layer", "application",
			"user_id", cmd.UserID,
			"contribution_id", contributionID,
			"error", err.Error(),
		)
		return RecordContributionResult{}, err
	}

	rankAdvanced := services.ShouldAdvanceRank(cmd.ObservedCount)
	if rankAdvanced {
		if err := u.Counters.IncrementContributorRank(ctx, cmd.UserID, now); err != nil {
			logger.Error("contributor rank increment failed",
				"event", "ledger_rank_increment_failed",
				"module", "lexicon/contribution-ledger",
				"layer", "application",
				"user_id", cmd.UserID,
				"contribution_id", contributionID,
				"error", err.Error(),
			)
			return RecordContributionResult{}, err
		}
	}

	logger.Info("contribution recorded",
		"event", "ledger_contribution_recorded",
		"module", "lexicon/contribution-ledger",
		"layer", "application",
		"contribution_id", contributionID,
		"user_id", cmd.UserID,
		"word_id", cmd.WordID,
		"contribution_type", string(cmd.Type),
		"observed_count", cmd.ObservedCount,
		"rank_advanced", rankAdvanced,
	)
	return RecordContributionResult{
		Contribution: contribution,
		RankAdvanced: rankAdvanced,
	}, nil
}

func (u RecordContributionUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
