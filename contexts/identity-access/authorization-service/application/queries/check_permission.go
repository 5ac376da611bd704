package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "lexicon/contexts/identity-access/authorization-service/application"
	"lexicon/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "lexicon/contexts/identity-access/authorization-service/domain/errors"
	"lexicon/contexts/identity-access/authorization-service/domain/services"
	"lexicon/contexts/identity-access/authorization-service/ports"
)

// CheckPermissionQuery is the request model for single-action evaluation.
// SubjectID names the user whose resources are targeted, when there is one.
type CheckPermissionQuery struct {
	ActorID   string
	Role      string
	Action    entities.Action
	SubjectID string
}

// CheckPermissionUseCase evaluates the static role policy.
type CheckPermissionUseCase struct {
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute denies by default. Contribution views are narrowed to own or others
// by comparing the actor with the subject.
func (u CheckPermissionUseCase) Execute(_ context.Context, query CheckPermissionQuery) (entities.PermissionDecision, error) {
	if strings.TrimSpace(query.ActorID) == "" {
		return entities.PermissionDecision{}, domainerrors.ErrInvalidActorID
	}
	action := resolveAction(query)
	if !services.KnownAction(action) {
		return entities.PermissionDecision{}, domainerrors.ErrInvalidAction
	}

	logger := application.ResolveLogger(u.Logger)
	decision := entities.PermissionDecision{
		ActorID:   query.ActorID,
		Action:    action,
		CheckedAt: u.now(),
	}

	role, ok := entities.ParseRole(query.Role)
	if !ok {
		decision.Reason = "role_unrecognized"
		logger.Warn("check permission denied, unknown role",
			"event", "authz_check_unknown_role",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"actor_id", query.ActorID,
			"role", query.Role,
			"action", string(action),
		)
		return decision, nil
	}
	decision.Role = role
	decision.Allowed = services.PolicyEngine(role, action)

	if !decision.Allowed {
		decision.Reason = "role_not_permitted"
		logger.Warn("check permission denied",
			"event", "authz_check_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"actor_id", query.ActorID,
			"role", string(role),
			"action", string(action),
			"subject_id", query.SubjectID,
		)
		return decision, nil
	}

	decision.Reason = "permission_granted"
	logger.Debug("check permission allowed",
		"event", "authz_check_allowed",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"actor_id", query.ActorID,
		"role", string(role),
		"action", string(action),
	)
	return decision, nil
}

func resolveAction(query CheckPermissionQuery) entities.Action {
	switch query.Action {
	case entities.ActionViewOwnContributions, entities.ActionViewOthersContributions:
		if strings.TrimSpace(query.SubjectID) == "" || query.SubjectID == query.ActorID {
			return entities.ActionViewOwnContributions
		}
		return entities.ActionViewOthersContributions
	default:
		return query.Action
	}
}

func (u CheckPermissionUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
