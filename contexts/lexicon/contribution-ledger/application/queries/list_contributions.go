package queries

import (
	"context"
	"log/slog"
	"strings"

	application "lexicon/contexts/lexicon/contribution-ledger/application"
	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"
	domainerrors "lexicon/contexts/lexicon/contribution-ledger/domain/errors"
	"lexicon/contexts/lexicon/contribution-ledger/ports"
)

// MaxListedContributions caps one listing response.
const MaxListedContributions = 1000

// ListContributionsUseCase returns a user's entries oldest first. Callers gate
// who may view whose history.
type ListContributionsUseCase struct {
	Contributions ports.ContributionRepository
	Logger        *slog.Logger
}

func (u ListContributionsUseCase) Execute(ctx context.Context, userID string) ([]entities.Contribution, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	items, err := u.Contributions.ListContributionsByUser(ctx, userID, MaxListedContributions)
	if err != nil {
		return nil, err
	}
	application.ResolveLogger(u.Logger).Debug("contributions listed",
		"event", "ledger_contributions_listed",
		"module", "lexicon/contribution-ledger",
		"layer", "application",
		"user_id", userID,
		"count", len(items),
	)
	return items, nil
}
