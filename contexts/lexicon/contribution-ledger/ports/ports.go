package ports

import (
	"context"
	"time"

	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"
)

type ContributionRepository interface {
	AppendContribution(ctx context.Context, contribution entities.Contribution) error
	ListContributionsByUser(ctx context.Context, userID string, limit int) ([]entities.Contribution, error)
}

// CounterStore owns the per-user counters. Both increments must be atomic
// store-side operations.
type CounterStore interface {
	IncrementContributionCount(ctx context.Context, userID string, at time.Time) error
	IncrementContributorRank(ctx context.Context, userID string, at time.Time) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
