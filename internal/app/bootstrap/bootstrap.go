package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	authorization "lexicon/contexts/identity-access/authorization-service"
	identityservice "lexicon/contexts/identity-access/identity-service"
	identitycrypto "lexicon/contexts/identity-access/identity-service/adapters/crypto"
	identityjwt "lexicon/contexts/identity-access/identity-service/adapters/jwt"
	identitypostgres "lexicon/contexts/identity-access/identity-service/adapters/postgres"
	catalog "lexicon/contexts/lexicon/catalog-service"
	catalogpostgres "lexicon/contexts/lexicon/catalog-service/adapters/postgres"
	ledger "lexicon/contexts/lexicon/contribution-ledger"
	ledgerpostgres "lexicon/contexts/lexicon/contribution-ledger/adapters/postgres"
	"lexicon/internal/app/wiring"
	"lexicon/internal/platform/config"
	"lexicon/internal/platform/db"
	"lexicon/internal/platform/httpserver"
	"lexicon/internal/platform/metrics"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const shutdownTimeout = 10 * time.Second

type APIApp struct {
	server      *httpserver.Server
	seeder      Seeder
	seedOnStart bool
	postgres    *db.Postgres
	logger      *slog.Logger
}

// Runtime is the set of context modules built for one store driver.
type Runtime struct {
	Modules  httpserver.Modules
	Metrics  *metrics.Metrics
	Postgres *db.Postgres
}

func BuildAPI(ctx context.Context, cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "process", "api")

	rt, err := BuildRuntime(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	server := httpserver.New(rt.Modules, httpserver.Options{
		Addr:               normalizeAddr(cfg.HTTPPort),
		LoginRatePerSecond: cfg.LoginRatePerSecond,
		LoginBurst:         cfg.LoginBurst,
		TrustForwardedFor:  cfg.TrustedProxy,
		Metrics:            rt.Metrics,
		Logger:             logger,
	})
	return &APIApp{
		server:      server,
		seeder:      NewSeeder(rt.Modules, cfg.SeedAdmin, logger),
		seedOnStart: cfg.SeedOnStart,
		postgres:    rt.Postgres,
		logger:      logger,
	}, nil
}

// BuildRuntime wires every context against the configured store driver.
func BuildRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger) (Runtime, error) {
	signer, err := identityjwt.NewSigner(cfg.TokenSecret)
	if err != nil {
		return Runtime{}, err
	}
	m := metrics.New(metricsNamespace(cfg.ServiceName))
	authzModule := authorization.NewInMemoryModule(logger)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		identity := identityservice.NewInMemoryModule(signer, cfg.TokenTTL, logger)
		ledgerModule := ledger.NewInMemoryModule(identity.Counters, logger)
		catalogModule := catalog.NewInMemoryModule(wiring.LedgerRecorder{Ledger: ledgerModule, Metrics: m}, logger)
		logger.Warn("using in-memory store, data is lost on restart",
			"event", "bootstrap_memory_store_selected",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		return Runtime{
			Modules: httpserver.Modules{
				Identity:      identity,
				Authorization: authzModule,
				Catalog:       catalogModule,
				Ledger:        ledgerModule,
			},
			Metrics: m,
		}, nil

	case config.StoreDriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return Runtime{}, errors.New("POSTGRES_DSN is required")
		}
		pg, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return Runtime{}, err
		}

		users := identitypostgres.NewRepository(pg.DB, logger)
		words := catalogpostgres.NewRepository(pg.DB, logger)
		contributions := ledgerpostgres.NewRepository(pg.DB, logger)
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx, users, words, contributions); err != nil {
				_ = pg.Close()
				return Runtime{}, err
			}
		}

		identity := identityservice.NewModule(identityservice.Dependencies{
			Users:       users,
			Counters:    users,
			Hasher:      identitycrypto.BcryptHasher{},
			Tokens:      signer,
			Clock:       identitypostgres.SystemClock{},
			IDGenerator: identitypostgres.UUIDGenerator{},
			TokenTTL:    cfg.TokenTTL,
			Logger:      logger,
		})
		ledgerModule := ledger.NewModule(ledger.Dependencies{
			Contributions: contributions,
			Counters:      users,
			Clock:         ledgerpostgres.SystemClock{},
			IDGenerator:   ledgerpostgres.UUIDGenerator{},
			Logger:        logger,
		})
		catalogModule := catalog.NewModule(catalog.Dependencies{
			Languages:     words,
			Words:         words,
			Contributions: wiring.LedgerRecorder{Ledger: ledgerModule, Metrics: m},
			Clock:         catalogpostgres.SystemClock{},
			IDGenerator:   catalogpostgres.UUIDGenerator{},
			Logger:        logger,
		})
		return Runtime{
			Modules: httpserver.Modules{
				Identity:      identity,
				Authorization: authzModule,
				Catalog:       catalogModule,
				Ledger:        ledgerModule,
			},
			Metrics:  m,
			Postgres: pg,
		}, nil

	default:
		return Runtime{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *APIApp) Run(ctx context.Context) error {
	if a.seedOnStart {
		if _, err := a.seeder.Run(ctx); err != nil {
			return err
		}
	}

	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

func metricsNamespace(serviceName string) string {
	value := strings.ToLower(strings.TrimSpace(serviceName))
	value = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(value)
	if value == "" {
		return "lexicon"
	}
	return value
}

func (r Runtime) Close() error {
	if r.Postgres != nil {
		return r.Postgres.Close()
	}
	return nil
}
