package ports

import (
	"context"
	"encoding/json"
	"time"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
)

type LanguageRepository interface {
	CreateLanguage(ctx context.Context, language entities.Language) error
	GetLanguage(ctx context.Context, languageID string) (entities.Language, error)
	GetLanguageByCode(ctx context.Context, code string) (entities.Language, error)
	ListLanguages(ctx context.Context, limit int) ([]entities.Language, error)
	CountLanguages(ctx context.Context) (int, error)
}

// WordFilter drives list_words. Empty fields do not filter.
type WordFilter struct {
	LanguageID string
	Contains   string
	Limit      int
}

// SearchFilter drives prefix search. Prefix is required.
type SearchFilter struct {
	Prefix     string
	LanguageID string
	Limit      int
}

type WordRepository interface {
	CreateWord(ctx context.Context, word entities.Word) error
	UpdateWord(ctx context.Context, word entities.Word) error
	GetWord(ctx context.Context, wordID string) (entities.Word, error)
	ListWords(ctx context.Context, filter WordFilter) ([]entities.Word, error)
	SearchWords(ctx context.Context, filter SearchFilter) ([]entities.Word, error)
}

const (
	ContributionTypeAdd  = "add"
	ContributionTypeEdit = "edit"
)

// ContributionRecord is handed to the ledger after a successful word write.
// ObservedCount is the actor's contribution count read before this request.
type ContributionRecord struct {
	UserID        string
	WordID        string
	Type          string
	Details       json.RawMessage
	ObservedCount int
}

type ContributionRecorder interface {
	RecordContribution(ctx context.Context, record ContributionRecord) error
}

// Actor is the authenticated user performing a write.
type Actor struct {
	UserID            string
	ContributionCount int
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
