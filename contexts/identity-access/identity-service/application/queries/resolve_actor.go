package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "lexicon/contexts/identity-access/identity-service/application"
	"lexicon/contexts/identity-access/identity-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
	"lexicon/contexts/identity-access/identity-service/ports"
)

// ResolveActorUseCase turns a bearer token into the current user record.
// Token resolution is purely cryptographic; the user lookup is a second step.
type ResolveActorUseCase struct {
	Users  ports.UserRepository
	Tokens ports.TokenService
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u ResolveActorUseCase) Execute(ctx context.Context, token string) (entities.User, error) {
	logger := application.ResolveLogger(u.Logger)

	username, err := u.Tokens.Resolve(token, u.now())
	if err != nil {
		logger.Debug("bearer token rejected",
			"event", "identity_token_rejected",
			"module", "identity-access/identity-service",
			"layer", "application",
		)
		return entities.User{}, domainerrors.ErrInvalidOrExpiredToken
	}

	user, err := u.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			logger.Warn("token subject has no account",
				"event", "identity_token_subject_missing",
				"module", "identity-access/identity-service",
				"layer", "application",
				"username", username,
			)
			return entities.User{}, domainerrors.ErrInvalidOrExpiredToken
		}
		return entities.User{}, err
	}
	return user, nil
}

func (u ResolveActorUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
