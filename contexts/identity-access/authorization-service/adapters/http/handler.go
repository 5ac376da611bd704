package httpadapter

import (
	"context"
	"log/slog"

	application "lexicon/contexts/identity-access/authorization-service/application"
	"lexicon/contexts/identity-access/authorization-service/application/queries"
	"lexicon/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/authorization-service/domain/errors"
	httptransport "lexicon/contexts/identity-access/authorization-service/transport/http"
)

// Handler maps permission DTOs to the check permission query.
type Handler struct {
	CheckPermission queries.CheckPermissionUseCase
	Logger          *slog.Logger
}

// CheckPermissionHandler evaluates one action for one actor.
func (h Handler) CheckPermissionHandler(
	ctx context.Context,
	request httptransport.CheckPermissionRequest,
) (httptransport.CheckPermissionResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("authz check received",
		"event", "authz_http_check_received",
		"module", "identity-access/authorization-service",
		"layer", "transport",
		"actor_id", request.ActorID,
		"action", request.Action,
	)

	decision, err := h.CheckPermission.Execute(ctx, queries.CheckPermissionQuery{
		ActorID:   request.ActorID,
		Role:      request.Role,
		Action:    entities.Action(request.Action),
		SubjectID: request.SubjectID,
	})
	if err != nil {
		logger.Error("authz check failed",
			"event", "authz_http_check_failed",
			"module", "identity-access/authorization-service",
			"layer", "transport",
			"actor_id", request.ActorID,
			"action", request.Action,
			"error", err.Error(),
		)
		return httptransport.CheckPermissionResponse{}, err
	}
	return httptransport.CheckPermissionResponse{
		ActorID:   decision.ActorID,
		Action:    string(decision.Action),
		Allowed:   decision.Allowed,
		Reason:    decision.Reason,
		CheckedAt: decision.CheckedAt,
	}, nil
}

// Require returns ErrForbidden unless the action is allowed.
func (h Handler) Require(ctx context.Context, request httptransport.CheckPermissionRequest) error {
	decision, err := h.CheckPermissionHandler(ctx, request)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domainerrors.ErrForbidden
	}
	return nil
}
