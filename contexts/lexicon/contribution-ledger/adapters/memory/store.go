package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"

	"github.com/google/uuid"
)

// Store keeps contributions per user in append order.
type Store struct {
	mu sync.RWMutex

	byUser map[string][]entities.Contribution
}

func NewStore() *Store {
	return &Store{
		byUser: make(map[string][]entities.Contribution),
	}
}

func (s *Store) AppendContribution(_ context.Context, contribution entities.Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contribution.Details = append(json.RawMessage(nil), contribution.Details...)
	s.byUser[contribution.UserID] = append(s.byUser[contribution.UserID], contribution)
	return nil
}

func (s *Store) ListContributionsByUser(_ context.Context, userID string, limit int) ([]entities.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.byUser[userID]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	result := make([]entities.Contribution, len(items))
	copy(result, items)
	return result, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
