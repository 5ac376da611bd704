package httpadapter

import (
	"context"
	"log/slog"

	application "lexicon/contexts/identity-access/identity-service/application"
	"lexicon/contexts/identity-access/identity-service/application/commands"
	"lexicon/contexts/identity-access/identity-service/application/queries"
	"lexicon/contexts/identity-access/identity-service/domain/entities"
	httptransport "lexicon/contexts/identity-access/identity-service/transport/http"
)

// Handler maps HTTP DTOs to identity commands/queries.
type Handler struct {
	Register     commands.RegisterUserUseCase
	IssueToken   commands.IssueTokenUseCase
	EnsureAdmin  commands.EnsureAdminUseCase
	ResolveActor queries.ResolveActorUseCase
	Logger       *slog.Logger
}

// RegisterHandler godoc
// @Summary Register an account
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Registration"
// @Success 200 {object} httptransport.UserResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /register [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.UserResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http register received",
		"event", "identity_http_register_received",
		"module", "identity-access/identity-service",
		"layer", "transport",
		"username", req.Username,
	)

	user, err := h.Register.Execute(ctx, commands.RegisterUserCommand{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return MapUser(user), nil
}

// TokenHandler godoc
// @Summary Exchange credentials for a bearer token
// @Tags identity
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 429 {object} httptransport.ErrorResponse
// @Router /token [post]
func (h Handler) TokenHandler(ctx context.Context, req httptransport.TokenRequest) (httptransport.TokenResponse, error) {
	token, err := h.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}, nil
}

// Authenticate resolves a bearer token to the acting user.
func (h Handler) Authenticate(ctx context.Context, token string) (entities.User, error) {
	return h.ResolveActor.Execute(ctx, token)
}

func MapUser(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:                user.UserID,
		Email:             user.Email,
		Username:          user.Username,
		Role:              string(user.Role),
		ContributorRank:   user.ContributorRank,
		ContributionCount: user.ContributionCount,
		CreatedAt:         user.CreatedAt,
	}
}
