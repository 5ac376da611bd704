package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "lexicon/contexts/identity-access/identity-service/application"
	"lexicon/contexts/identity-access/identity-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
)

type EnsureAdminCommand struct {
	Username string
	Email    string
	Password string
}

type EnsureAdminResult struct {
	User    entities.User
	Created bool
}

// EnsureAdminUseCase bootstraps an administrator from explicit configuration.
// An existing account with the same username is left untouched.
type EnsureAdminUseCase struct {
	Register RegisterUserUseCase
	Logger   *slog.Logger
}

func (u EnsureAdminUseCase) Execute(ctx context.Context, cmd EnsureAdminCommand) (EnsureAdminResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Username) == "" || strings.TrimSpace(cmd.Password) == "" {
		return EnsureAdminResult{}, domainerrors.ErrInvalidRegistration
	}

	existing, err := u.Register.Users.GetUserByUsername(ctx, cmd.Username)
	if err == nil {
		logger.Info("admin bootstrap skipped, user exists",
			"event", "identity_admin_bootstrap_skipped",
			"module", "identity-access/identity-service",
			"layer", "application",
			"user_id", existing.UserID,
		)
		return EnsureAdminResult{User: existing}, nil
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return EnsureAdminResult{}, err
	}

	user, err := u.Register.Execute(ctx, RegisterUserCommand{
		Email:    cmd.Email,
		Username: cmd.Username,
		Password: cmd.Password,
		Role:     entities.RoleAdmin,
	})
	if err != nil {
		return EnsureAdminResult{}, err
	}
	logger.Info("admin account bootstrapped",
		"event", "identity_admin_bootstrapped",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return EnsureAdminResult{User: user, Created: true}, nil
}
