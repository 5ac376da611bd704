package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	authzentities "lexicon/contexts/identity-access/authorization-service/domain/entities"
	identityentities "lexicon/contexts/identity-access/identity-service/domain/entities"
	catalogerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	catalogports "lexicon/contexts/lexicon/catalog-service/ports"
	catalogtransport "lexicon/contexts/lexicon/catalog-service/transport/http"
)

func (s *Server) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListLanguagesHandler(r.Context())
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateLanguage(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, r, user, authzentities.ActionCreateLanguage, "") {
		return
	}
	var req catalogtransport.CreateLanguageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w)
		return
	}
	resp, err := s.catalog.Handler.CreateLanguageHandler(r.Context(), user.UserID, req)
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.catalog.Handler.ListWordsHandler(r.Context(), query.Get("language_id"), query.Get("search"))
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetWordHandler(r.Context(), r.PathValue("word_id"))
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, r, user, authzentities.ActionCreateWord, "") {
		return
	}
	var req catalogtransport.CreateWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w)
		return
	}
	resp, err := s.catalog.Handler.CreateWordHandler(r.Context(), catalogActor(user), req)
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateWord(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, r, user, authzentities.ActionUpdateWord, "") {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(body) {
		writeInvalidBody(w)
		return
	}
	resp, err := s.catalog.Handler.UpdateWordHandler(r.Context(), catalogActor(user), r.PathValue("word_id"), body)
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.catalog.Handler.SearchHandler(
		r.Context(),
		query.Get("word"),
		query.Get("from_language"),
		query.Get("to_language"),
	)
	if err != nil {
		s.writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// catalogActor carries the count as read at authentication time; the ledger
// decides rank advancement from it.
func catalogActor(user identityentities.User) catalogports.Actor {
	return catalogports.Actor{
		UserID:            user.UserID,
		ContributionCount: user.ContributionCount,
	}
}

func writeInvalidBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, catalogtransport.ErrorResponse{
		Code:    "invalid_request",
		Message: "invalid request body",
	})
}

func (s *Server) writeCatalogDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "internal server error"
	switch {
	case errors.Is(err, catalogerrors.ErrInvalidLanguageInput),
		errors.Is(err, catalogerrors.ErrInvalidWordInput),
		errors.Is(err, catalogerrors.ErrInvalidSearchQuery):
		status, code, message = http.StatusBadRequest, "invalid_input", err.Error()
	case errors.Is(err, catalogerrors.ErrInvalidReference):
		status, code, message = http.StatusBadRequest, "invalid_reference", err.Error()
	case errors.Is(err, catalogerrors.ErrLanguageCodeTaken):
		status, code, message = http.StatusBadRequest, "duplicate", err.Error()
	case errors.Is(err, catalogerrors.ErrWordNotFound), errors.Is(err, catalogerrors.ErrLanguageNotFound):
		status, code, message = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, catalogerrors.ErrInvalidActor):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		status, code, message = http.StatusUnauthorized, "invalid_token", err.Error()
	default:
		s.logInternalError("catalog", err)
	}
	writeJSON(w, status, catalogtransport.ErrorResponse{Code: code, Message: message})
}
