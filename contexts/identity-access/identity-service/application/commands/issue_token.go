package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "lexicon/contexts/identity-access/identity-service/application"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
	"lexicon/contexts/identity-access/identity-service/ports"
)

type IssueTokenCommand struct {
	Username string
	Password string
}

// IssueTokenUseCase exchanges username/password for a bearer token.
type IssueTokenUseCase struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenService
	Clock  ports.Clock
	TTL    time.Duration
	Logger *slog.Logger
}

// Execute returns ErrInvalidCredentials for both unknown users and bad passwords.
func (u IssueTokenUseCase) Execute(ctx context.Context, cmd IssueTokenCommand) (ports.IssuedToken, error) {
	logger := application.ResolveLogger(u.Logger)

	user, err := u.Users.GetUserByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			logger.Warn("token request for unknown user",
				"event", "identity_token_unknown_user",
				"module", "identity-access/identity-service",
				"layer", "application",
				"username", cmd.Username,
			)
			return ports.IssuedToken{}, domainerrors.ErrInvalidCredentials
		}
		return ports.IssuedToken{}, err
	}
	if !u.Hasher.Verify(cmd.Password, user.PasswordHash) {
		logger.Warn("token request with bad password",
			"event", "identity_token_bad_password",
			"module", "identity-access/identity-service",
			"layer", "application",
			"user_id", user.UserID,
		)
		return ports.IssuedToken{}, domainerrors.ErrInvalidCredentials
	}

	token, err := u.Tokens.Issue(user.Username, u.TTL, u.now())
	if err != nil {
		logger.Error("token signing failed",
			"event", "identity_token_sign_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"user_id", user.UserID,
			"error", err.Error(),
		)
		return ports.IssuedToken{}, err
	}

	logger.Info("token issued",
		"event", "identity_token_issued",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"expires_at", token.ExpiresAt,
	)
	return token, nil
}

func (u IssueTokenUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
