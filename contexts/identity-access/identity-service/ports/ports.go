package ports

import (
	"context"
	"time"

	"lexicon/contexts/identity-access/identity-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new users.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PasswordHasher is the credential store boundary.
// Verify must return false, not panic, on a malformed hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

// TokenService issues and resolves signed bearer tokens bound to a username.
type TokenService interface {
	Issue(username string, ttl time.Duration, now time.Time) (IssuedToken, error)
	Resolve(token string, now time.Time) (string, error)
}

type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// UserRepository owns user identity records.
type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
}

// CounterStore mutates the contribution counters on a user record.
// Both methods are store-side increments; callers read no value back.
type CounterStore interface {
	IncrementContributionCount(ctx context.Context, userID string, at time.Time) error
	IncrementContributorRank(ctx context.Context, userID string, at time.Time) error
}
