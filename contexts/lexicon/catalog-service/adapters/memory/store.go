package memory

import (
	"context"
	"sync"
	"time"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/domain/services"
	"lexicon/contexts/lexicon/catalog-service/ports"

	"github.com/google/uuid"
)

// Store keeps languages and words in insertion order.
type Store struct {
	mu sync.RWMutex

	languages     map[string]entities.Language
	languageOrder []string
	byCode        map[string]string

	words     map[string]entities.Word
	wordOrder []string
}

func NewStore() *Store {
	return &Store{
		languages: make(map[string]entities.Language),
		byCode:    make(map[string]string),
		words:     make(map[string]entities.Word),
	}
}

func (s *Store) CreateLanguage(_ context.Context, language entities.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byCode[language.Code]; exists {
		return domainerrors.ErrLanguageCodeTaken
	}
	s.languages[language.LanguageID] = language
	s.byCode[language.Code] = language.LanguageID
	s.languageOrder = append(s.languageOrder, language.LanguageID)
	return nil
}

func (s *Store) GetLanguage(_ context.Context, languageID string) (entities.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	language, exists := s.languages[languageID]
	if !exists {
		return entities.Language{}, domainerrors.ErrLanguageNotFound
	}
	return language, nil
}

func (s *Store) GetLanguageByCode(_ context.Context, code string) (entities.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	languageID, exists := s.byCode[code]
	if !exists {
		return entities.Language{}, domainerrors.ErrLanguageNotFound
	}
	return s.languages[languageID], nil
}

func (s *Store) ListLanguages(_ context.Context, limit int) ([]entities.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Language, 0, len(s.languageOrder))
	for _, languageID := range s.languageOrder {
		if limit > 0 && len(items) >= limit {
			break
		}
		items = append(items, s.languages[languageID])
	}
	return items, nil
}

func (s *Store) CountLanguages(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.languages), nil
}

func (s *Store) CreateWord(_ context.Context, word entities.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words[word.WordID] = cloneWord(word)
	s.wordOrder = append(s.wordOrder, word.WordID)
	return nil
}

func (s *Store) UpdateWord(_ context.Context, word entities.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.words[word.WordID]; !exists {
		return domainerrors.ErrWordNotFound
	}
	s.words[word.WordID] = cloneWord(word)
	return nil
}

func (s *Store) GetWord(_ context.Context, wordID string) (entities.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	word, exists := s.words[wordID]
	if !exists {
		return entities.Word{}, domainerrors.ErrWordNotFound
	}
	return cloneWord(word), nil
}

func (s *Store) ListWords(_ context.Context, filter ports.WordFilter) ([]entities.Word, error) {
	return s.collect(filter.Limit, func(word entities.Word) bool {
		if filter.LanguageID != "" && word.LanguageID != filter.LanguageID {
			return false
		}
		return filter.Contains == "" || services.ContainsFold(word.Text, filter.Contains)
	}), nil
}

func (s *Store) SearchWords(_ context.Context, filter ports.SearchFilter) ([]entities.Word, error) {
	return s.collect(filter.Limit, func(word entities.Word) bool {
		if filter.LanguageID != "" && word.LanguageID != filter.LanguageID {
			return false
		}
		return services.HasPrefixFold(word.Text, filter.Prefix)
	}), nil
}

func (s *Store) collect(limit int, match func(entities.Word) bool) []entities.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Word, 0)
	for _, wordID := range s.wordOrder {
		if limit > 0 && len(items) >= limit {
			break
		}
		word := s.words[wordID]
		if match(word) {
			items = append(items, cloneWord(word))
		}
	}
	return items
}

func cloneWord(word entities.Word) entities.Word {
	word.Meanings = append([]entities.Meaning{}, word.Meanings...)
	return word
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
