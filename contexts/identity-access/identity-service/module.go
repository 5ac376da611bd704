package identityservice

import (
	"log/slog"
	"time"

	httpadapter "lexicon/contexts/identity-access/identity-service/adapters/http"
	cryptoadapter "lexicon/contexts/identity-access/identity-service/adapters/crypto"
	"lexicon/contexts/identity-access/identity-service/adapters/memory"
	"lexicon/contexts/identity-access/identity-service/application/commands"
	"lexicon/contexts/identity-access/identity-service/application/queries"
	"lexicon/contexts/identity-access/identity-service/ports"
)

// Module is the identity-service composition root exposed to runtime wiring.
type Module struct {
	Handler  httpadapter.Handler
	Counters ports.CounterStore
	Store    *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users       ports.UserRepository
	Counters    ports.CounterStore
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenService
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	TokenTTL    time.Duration
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	register := commands.RegisterUserUseCase{
		Users:       deps.Users,
		Hasher:      deps.Hasher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	issueToken := commands.IssueTokenUseCase{
		Users:  deps.Users,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		TTL:    deps.TokenTTL,
		Logger: deps.Logger,
	}
	ensureAdmin := commands.EnsureAdminUseCase{
		Register: register,
		Logger:   deps.Logger,
	}
	resolveActor := queries.ResolveActorUseCase{
		Users:  deps.Users,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Register:     register,
			IssueToken:   issueToken,
			EnsureAdmin:  ensureAdmin,
			ResolveActor: resolveActor,
			Logger:       deps.Logger,
		},
		Counters: deps.Counters,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(tokens ports.TokenService, tokenTTL time.Duration, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:       store,
		Counters:    store,
		Hasher:      cryptoadapter.BcryptHasher{},
		Tokens:      tokens,
		Clock:       store,
		IDGenerator: store,
		TokenTTL:    tokenTTL,
		Logger:      logger,
	})
	module.Store = store
	return module
}
