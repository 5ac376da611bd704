package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	authorization "lexicon/contexts/identity-access/authorization-service"
	identityservice "lexicon/contexts/identity-access/identity-service"
	catalog "lexicon/contexts/lexicon/catalog-service"
	ledger "lexicon/contexts/lexicon/contribution-ledger"
	"lexicon/internal/platform/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "lexicon/internal/platform/httpserver/docs"
)

const maxBodyBytes = 1 << 20

// Modules groups the bounded contexts served over HTTP.
type Modules struct {
	Identity      identityservice.Module
	Authorization authorization.Module
	Catalog       catalog.Module
	Ledger        ledger.Module
}

type Options struct {
	Addr               string
	LoginRatePerSecond float64
	LoginBurst         int
	TrustForwardedFor  bool
	Metrics            *metrics.Metrics
	Logger             *slog.Logger
}

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	identity      identityservice.Module
	authorization authorization.Module
	catalog       catalog.Module
	ledger        ledger.Module
	metrics       *metrics.Metrics
	loginLimiter  *clientLimiter
	trustProxy    bool
	httpServer    *http.Server
}

func New(modules Modules, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("lexicon")
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		identity:      modules.Identity,
		authorization: modules.Authorization,
		catalog:       modules.Catalog,
		ledger:        modules.Ledger,
		metrics:       m,
		loginLimiter:  newClientLimiter(opts.LoginRatePerSecond, opts.LoginBurst),
		trustProxy:    opts.TrustForwardedFor,
	}
	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", s.metrics.Handler())
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.route("POST /api/register", s.handleRegister)
	s.route("POST /api/token", s.handleToken)
	s.route("GET /api/users/me", s.handleCurrentUser)

	s.route("GET /api/languages", s.handleListLanguages)
	s.route("POST /api/languages", s.handleCreateLanguage)
	s.route("GET /api/words", s.handleListWords)
	s.route("GET /api/words/{word_id}", s.handleGetWord)
	s.route("POST /api/words", s.handleCreateWord)
	s.route("PUT /api/words/{word_id}", s.handleUpdateWord)
	s.route("GET /api/search", s.handleSearch)

	s.route("GET /api/user/{user_id}/contributions", s.handleListContributions)
}

func (s *Server) route(pattern string, handler http.HandlerFunc) {
	s.mux.Handle(pattern, s.metrics.Instrument(pattern, handler))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(target)
}
