package httpserver

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	identityhttp "lexicon/contexts/identity-access/identity-service/adapters/http"
	identityentities "lexicon/contexts/identity-access/identity-service/domain/entities"
	identityerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
	identitytransport "lexicon/contexts/identity-access/identity-service/transport/http"
)

const bearerChallenge = "Bearer"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req identitytransport.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, identitytransport.ErrorResponse{
			Code:    "invalid_request",
			Message: "invalid request body",
		})
		return
	}
	resp, err := s.identity.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		s.writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	client := resolveClientIP(r, s.trustProxy)
	if !s.loginLimiter.Allow(client) {
		s.logger.Warn("login throttled",
			"event", "http_login_throttled",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"client_ip", client,
		)
		writeJSON(w, http.StatusTooManyRequests, identitytransport.ErrorResponse{
			Code:    "too_many_requests",
			Message: "too many login attempts",
		})
		return
	}

	req, err := readTokenRequest(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, identitytransport.ErrorResponse{
			Code:    "invalid_request",
			Message: "invalid request body",
		})
		return
	}
	resp, err := s.identity.Handler.TokenHandler(r.Context(), req)
	if err != nil {
		s.writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// readTokenRequest accepts the OAuth2 password form as well as a JSON body.
func readTokenRequest(w http.ResponseWriter, r *http.Request) (identitytransport.TokenRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req identitytransport.TokenRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return identitytransport.TokenRequest{}, err
		}
		return req, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return identitytransport.TokenRequest{}, err
	}
	return identitytransport.TokenRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, identityhttp.MapUser(user))
}

// authenticate writes the 401 itself; callers only return when ok is false.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (identityentities.User, bool) {
	token, found := bearerToken(r)
	if !found {
		s.writeIdentityDomainError(w, identityerrors.ErrInvalidOrExpiredToken)
		return identityentities.User{}, false
	}
	user, err := s.identity.Handler.Authenticate(r.Context(), token)
	if err != nil {
		s.writeIdentityDomainError(w, err)
		return identityentities.User{}, false
	}
	return user, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerChallenge) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (s *Server) writeIdentityDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "internal server error"
	switch {
	case errors.Is(err, identityerrors.ErrInvalidRegistration):
		status, code, message = http.StatusBadRequest, "invalid_input", err.Error()
	case errors.Is(err, identityerrors.ErrUsernameTaken), errors.Is(err, identityerrors.ErrEmailTaken):
		status, code, message = http.StatusBadRequest, "duplicate", err.Error()
	case errors.Is(err, identityerrors.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		status, code, message = http.StatusUnauthorized, "invalid_credentials", err.Error()
	case errors.Is(err, identityerrors.ErrInvalidOrExpiredToken):
		w.Header().Set("WWW-Authenticate", bearerChallenge)
		status, code, message = http.StatusUnauthorized, "invalid_token", err.Error()
	default:
		s.logInternalError("identity", err)
	}
	writeJSON(w, status, identitytransport.ErrorResponse{Code: code, Message: message})
}

func (s *Server) logInternalError(boundedContext string, err error) {
	s.logger.Error("request failed",
		"event", "http_request_failed",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"context", boundedContext,
		slog.Any("error", err),
	)
}
