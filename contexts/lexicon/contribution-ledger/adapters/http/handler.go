package httpadapter

import (
	"context"
	"log/slog"

	"lexicon/contexts/lexicon/contribution-ledger/application/commands"
	"lexicon/contexts/lexicon/contribution-ledger/application/queries"
	httptransport "lexicon/contexts/lexicon/contribution-ledger/transport/http"
)

// Handler exposes the ledger. Record has no HTTP route; it is reached from the
// catalog through runtime wiring.
type Handler struct {
	Record            commands.RecordContributionUseCase
	ListContributions queries.ListContributionsUseCase
	Logger            *slog.Logger
}

// ListContributionsHandler godoc
// @Summary List a user's contributions
// @Description Users may list their own; moderators and admins may list anyone's.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User id"
// @Success 200 {array} httptransport.ContributionResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /user/{user_id}/contributions [get]
func (h Handler) ListContributionsHandler(ctx context.Context, userID string) ([]httptransport.ContributionResponse, error) {
	items, err := h.ListContributions.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.ContributionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.ContributionResponse{
			ID:               item.ContributionID,
			UserID:           item.UserID,
			WordID:           item.WordID,
			ContributionType: string(item.Type),
			ChangeDetails:    item.Details,
			CreatedAt:        item.CreatedAt,
		})
	}
	return result, nil
}
