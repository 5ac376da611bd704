package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	authorization "lexicon/contexts/identity-access/authorization-service"
	identityservice "lexicon/contexts/identity-access/identity-service"
	jwtadapter "lexicon/contexts/identity-access/identity-service/adapters/jwt"
	identityentities "lexicon/contexts/identity-access/identity-service/domain/entities"
	catalog "lexicon/contexts/lexicon/catalog-service"
	ledger "lexicon/contexts/lexicon/contribution-ledger"
	"lexicon/internal/app/wiring"
	"lexicon/internal/platform/metrics"
)

type testEnv struct {
	server   *Server
	identity identityservice.Module
	catalog  catalog.Module
}

func newTestServer() *Server {
	return newTestEnv(Options{}).server
}

func newTestEnv(opts Options) testEnv {
	signer, err := jwtadapter.NewSigner("test-secret")
	if err != nil {
		panic(err)
	}
	logger := slog.Default()
	m := metrics.New("lexicon_test")

	identity := identityservice.NewInMemoryModule(signer, time.Minute, logger)
	ledgerModule := ledger.NewInMemoryModule(identity.Counters, logger)
	catalogModule := catalog.NewInMemoryModule(wiring.LedgerRecorder{Ledger: ledgerModule, Metrics: m}, logger)

	opts.Addr = ":0"
	opts.Logger = logger
	opts.Metrics = m
	server := New(Modules{
		Identity:      identity,
		Authorization: authorization.NewInMemoryModule(logger),
		Catalog:       catalogModule,
		Ledger:        ledgerModule,
	}, opts)
	return testEnv{server: server, identity: identity, catalog: catalogModule}
}

func (e testEnv) do(t *testing.T, method string, target string, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.server.mux.ServeHTTP(rr, req)
	return rr
}

func (e testEnv) login(t *testing.T, username string, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	e.server.mux.ServeHTTP(rr, req)
	return rr
}

type sessionUser struct {
	ID    string
	Token string
}

// signUp registers username and returns a bearer token, optionally promoting
// the account first.
func (e testEnv) signUp(t *testing.T, username string, role identityentities.Role) sessionUser {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/register", "",
		`{"email":"`+username+`@example.com","username":"`+username+`","password":"s3cret-pass"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}
	var user struct {
		ID string `json:"id"`
	}
	decodeBody(t, rr, &user)
	if role != "" {
		if err := e.identity.Store.SetRole(user.ID, role); err != nil {
			t.Fatalf("set role: %v", err)
		}
	}

	rr = e.login(t, username, "s3cret-pass")
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}
	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, rr, &token)
	if token.TokenType != "bearer" || token.AccessToken == "" {
		t.Fatalf("unexpected token response %+v", token)
	}
	return sessionUser{ID: user.ID, Token: token.AccessToken}
}

func (e testEnv) createLanguage(t *testing.T, token string, code string) string {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/languages", token, `{"name":"Lang `+code+`","code":"`+code+`"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("create language %s: expected 200, got %d body=%s", code, rr.Code, rr.Body.String())
	}
	var language struct {
		ID string `json:"id"`
	}
	decodeBody(t, rr, &language)
	return language.ID
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), target); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}
