package catalog

import (
	"log/slog"

	httpadapter "lexicon/contexts/lexicon/catalog-service/adapters/http"
	"lexicon/contexts/lexicon/catalog-service/adapters/memory"
	"lexicon/contexts/lexicon/catalog-service/application/commands"
	"lexicon/contexts/lexicon/catalog-service/application/queries"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

// Module is the catalog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Languages     ports.LanguageRepository
	Words         ports.WordRepository
	Contributions ports.ContributionRecorder
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateLanguage: commands.CreateLanguageUseCase{
				Languages:   deps.Languages,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			SeedLanguages: commands.SeedLanguagesUseCase{
				Languages:   deps.Languages,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			CreateWord: commands.CreateWordUseCase{
				Languages:     deps.Languages,
				Words:         deps.Words,
				Contributions: deps.Contributions,
				Clock:         deps.Clock,
				IDGenerator:   deps.IDGenerator,
				Logger:        deps.Logger,
			},
			UpdateWord: commands.UpdateWordUseCase{
				Languages:     deps.Languages,
				Words:         deps.Words,
				Contributions: deps.Contributions,
				Clock:         deps.Clock,
				Logger:        deps.Logger,
			},
			ListLanguages: queries.ListLanguagesUseCase{
				Languages: deps.Languages,
				Logger:    deps.Logger,
			},
			ListWords: queries.ListWordsUseCase{
				Words:  deps.Words,
				Logger: deps.Logger,
			},
			GetWord: queries.GetWordUseCase{
				Words: deps.Words,
			},
			SearchWords: queries.SearchWordsUseCase{
				Words:  deps.Words,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(contributions ports.ContributionRecorder, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Languages:     store,
		Words:         store,
		Contributions: contributions,
		Clock:         store,
		IDGenerator:   store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
