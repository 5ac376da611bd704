package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "lexicon/contexts/identity-access/identity-service/application"
	"lexicon/contexts/identity-access/identity-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
	"lexicon/contexts/identity-access/identity-service/domain/services"
	"lexicon/contexts/identity-access/identity-service/ports"
)

// RegisterUserCommand contains transport-agnostic registration input.
type RegisterUserCommand struct {
	Email    string
	Username string
	Password string
	Role     entities.Role
}

// RegisterUserUseCase creates an account after username/email uniqueness checks.
type RegisterUserUseCase struct {
	Users       ports.UserRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute checks username first, then email, mirroring the order users see errors in.
// The store's unique indexes still reject a concurrent duplicate.
func (u RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(u.Logger)

	email, ok := services.NormalizeEmail(cmd.Email)
	if !ok || !services.ValidUsername(cmd.Username) || !services.ValidPassword(cmd.Password) {
		return entities.User{}, domainerrors.ErrInvalidRegistration
	}
	role := cmd.Role
	if role == "" {
		role = entities.DefaultRegistrationRole
	}
	if _, ok := entities.ParseRole(string(role)); !ok {
		return entities.User{}, domainerrors.ErrInvalidRegistration
	}

	if err := u.ensureAbsent(ctx, u.Users.GetUserByUsername, cmd.Username, domainerrors.ErrUsernameTaken); err != nil {
		return entities.User{}, err
	}
	if err := u.ensureAbsent(ctx, u.Users.GetUserByEmail, email, domainerrors.ErrEmailTaken); err != nil {
		return entities.User{}, err
	}

	hash, err := u.Hasher.Hash(cmd.Password)
	if err != nil {
		logger.Error("password hash failed",
			"event", "identity_register_hash_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"username", cmd.Username,
			"error", err.Error(),
		)
		return entities.User{}, err
	}
	userID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}

	now := u.now()
	user := entities.User{
		UserID:       userID,
		Email:        email,
		Username:     cmd.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Users.CreateUser(ctx, user); err != nil {
		logger.Warn("user create rejected",
			"event", "identity_register_write_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"username", cmd.Username,
			"error", err.Error(),
		)
		return entities.User{}, err
	}

	logger.Info("user registered",
		"event", "identity_user_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"username", user.Username,
		"role", string(user.Role),
	)
	return user, nil
}

func (u RegisterUserUseCase) ensureAbsent(
	ctx context.Context,
	lookup func(context.Context, string) (entities.User, error),
	value string,
	conflict error,
) error {
	_, err := lookup(ctx, strings.TrimSpace(value))
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (u RegisterUserUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
