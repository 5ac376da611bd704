package ledger

import (
	"log/slog"

	httpadapter "lexicon/contexts/lexicon/contribution-ledger/adapters/http"
	"lexicon/contexts/lexicon/contribution-ledger/adapters/memory"
	"lexicon/contexts/lexicon/contribution-ledger/application/commands"
	"lexicon/contexts/lexicon/contribution-ledger/application/queries"
	"lexicon/contexts/lexicon/contribution-ledger/ports"
)

// Module is the contribution-ledger composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Contributions ports.ContributionRepository
	Counters      ports.CounterStore
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Record: commands.RecordContributionUseCase{
				Contributions: deps.Contributions,
				Counters:      deps.Counters,
				Clock:         deps.Clock,
				IDGenerator:   deps.IDGenerator,
				Logger:        deps.Logger,
			},
			ListContributions: queries.ListContributionsUseCase{
				Contributions: deps.Contributions,
				Logger:        deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule keeps entries in memory; counters live wherever users do.
func NewInMemoryModule(counters ports.CounterStore, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Contributions: store,
		Counters:      counters,
		Clock:         store,
		IDGenerator:   store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
