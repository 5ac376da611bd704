package httpserver

import (
	"errors"
	"net/http"

	authzentities "lexicon/contexts/identity-access/authorization-service/domain/entities"
	authzerrors "lexicon/contexts/identity-access/authorization-service/domain/errors"
	authztransport "lexicon/contexts/identity-access/authorization-service/transport/http"
	identityentities "lexicon/contexts/identity-access/identity-service/domain/entities"
)

// authorize checks action for the authenticated user and writes 403 on denial.
func (s *Server) authorize(
	w http.ResponseWriter,
	r *http.Request,
	user identityentities.User,
	action authzentities.Action,
	subjectID string,
) bool {
	err := s.authorization.Handler.Require(r.Context(), authztransport.CheckPermissionRequest{
		ActorID:   user.UserID,
		Role:      string(user.Role),
		Action:    string(action),
		SubjectID: subjectID,
	})
	if err != nil {
		s.writeAuthorizationDomainError(w, err)
		return false
	}
	return true
}

func (s *Server) writeAuthorizationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrForbidden):
		writeJSON(w, http.StatusForbidden, authztransport.ErrorResponse{
			Code:    "forbidden",
			Message: err.Error(),
		})
	case errors.Is(err, authzerrors.ErrInvalidActorID), errors.Is(err, authzerrors.ErrInvalidAction):
		writeJSON(w, http.StatusBadRequest, authztransport.ErrorResponse{
			Code:    "invalid_input",
			Message: err.Error(),
		})
	default:
		s.logInternalError("authorization", err)
		writeJSON(w, http.StatusInternalServerError, authztransport.ErrorResponse{
			Code:    "internal_error",
			Message: "internal server error",
		})
	}
}
