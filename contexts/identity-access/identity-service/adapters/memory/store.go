package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"lexicon/contexts/identity-access/identity-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"

	"github.com/google/uuid"
)

// Store keeps users in process memory. Usernames and emails are unique.
type Store struct {
	mu sync.RWMutex

	users      map[string]entities.User
	byUsername map[string]string
	byEmail    map[string]string
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]entities.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return domainerrors.ErrUsernameTaken
	}
	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return domainerrors.ErrEmailTaken
	}
	s.users[user.UserID] = user
	s.byUsername[user.Username] = user.UserID
	s.byEmail[email] = user.UserID
	return nil
}

func (s *Store) GetUserByID(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[strings.TrimSpace(userID)]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, exists := s.byUsername[username]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.users[userID], nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, exists := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.users[userID], nil
}

func (s *Store) IncrementContributionCount(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return domainerrors.ErrUserNotFound
	}
	user.ContributionCount++
	user.UpdatedAt = at.UTC()
	s.users[userID] = user
	return nil
}

func (s *Store) IncrementContributorRank(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return domainerrors.ErrUserNotFound
	}
	user.ContributorRank++
	user.UpdatedAt = at.UTC()
	s.users[userID] = user
	return nil
}

// SetRole is used by tests and dev tooling; no HTTP route exposes role changes.
func (s *Store) SetRole(userID string, role entities.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists {
		return domainerrors.ErrUserNotFound
	}
	user.Role = role
	s.users[userID] = user
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
