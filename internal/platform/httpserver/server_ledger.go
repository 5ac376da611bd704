package httpserver

import (
	"errors"
	"net/http"

	authzentities "lexicon/contexts/identity-access/authorization-service/domain/entities"
	ledgererrors "lexicon/contexts/lexicon/contribution-ledger/domain/errors"
	ledgertransport "lexicon/contexts/lexicon/contribution-ledger/transport/http"
)

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	subjectID := r.PathValue("user_id")
	// The policy resolves own vs others by comparing subject and actor.
	if !s.authorize(w, r, user, authzentities.ActionViewOthersContributions, subjectID) {
		return
	}
	resp, err := s.ledger.Handler.ListContributionsHandler(r.Context(), subjectID)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrInvalidUserID),
		errors.Is(err, ledgererrors.ErrInvalidContribution),
		errors.Is(err, ledgererrors.ErrUnsupportedContributionType):
		writeJSON(w, http.StatusBadRequest, ledgertransport.ErrorResponse{
			Code:    "invalid_input",
			Message: err.Error(),
		})
	default:
		s.logInternalError("ledger", err)
		writeJSON(w, http.StatusInternalServerError, ledgertransport.ErrorResponse{
			Code:    "internal_error",
			Message: "internal server error",
		})
	}
}
