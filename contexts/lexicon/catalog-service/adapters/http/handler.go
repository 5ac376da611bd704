package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"

	application "lexicon/contexts/lexicon/catalog-service/application"
	"lexicon/contexts/lexicon/catalog-service/application/commands"
	"lexicon/contexts/lexicon/catalog-service/application/queries"
	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	"lexicon/contexts/lexicon/catalog-service/ports"
	httptransport "lexicon/contexts/lexicon/catalog-service/transport/http"
)

// Handler maps HTTP DTOs to catalog commands/queries.
type Handler struct {
	CreateLanguage commands.CreateLanguageUseCase
	SeedLanguages  commands.SeedLanguagesUseCase
	CreateWord     commands.CreateWordUseCase
	UpdateWord     commands.UpdateWordUseCase
	ListLanguages  queries.ListLanguagesUseCase
	ListWords      queries.ListWordsUseCase
	GetWord        queries.GetWordUseCase
	SearchWords    queries.SearchWordsUseCase
	Logger         *slog.Logger
}

// ListLanguagesHandler godoc
// @Summary List languages
// @Tags catalog
// @Produce json
// @Success 200 {array} httptransport.LanguageResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /languages [get]
func (h Handler) ListLanguagesHandler(ctx context.Context) ([]httptransport.LanguageResponse, error) {
	items, err := h.ListLanguages.Execute(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]httptransport.LanguageResponse, 0, len(items))
	for _, item := range items {
		result = append(result, mapLanguage(item))
	}
	return result, nil
}

// CreateLanguageHandler godoc
// @Summary Create a language
// @Description Moderators and admins only. Codes are two-letter ISO 639-1 and unique.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateLanguageRequest true "Language"
// @Success 200 {object} httptransport.LanguageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /languages [post]
func (h Handler) CreateLanguageHandler(
	ctx context.Context,
	actorID string,
	req httptransport.CreateLanguageRequest,
) (httptransport.LanguageResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http create language received",
		"event", "catalog_http_create_language_received",
		"module", "lexicon/catalog-service",
		"layer", "transport",
		"actor_id", actorID,
		"code", req.Code,
	)
	item, err := h.CreateLanguage.Execute(ctx, commands.CreateLanguageCommand{
		Name:       req.Name,
		Code:       req.Code,
		NativeName: req.NativeName,
	})
	if err != nil {
		return httptransport.LanguageResponse{}, err
	}
	return mapLanguage(item), nil
}

// ListWordsHandler godoc
// @Summary List words
// @Tags catalog
// @Produce json
// @Param language_id query string false "Word language"
// @Param search query string false "Case-insensitive substring"
// @Success 200 {array} httptransport.WordResponse
// @Router /words [get]
func (h Handler) ListWordsHandler(ctx context.Context, languageID string, search string) ([]httptransport.WordResponse, error) {
	items, err := h.ListWords.Execute(ctx, queries.ListWordsQuery{
		LanguageID: languageID,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}
	return mapWords(items), nil
}

// GetWordHandler godoc
// @Summary Get a word
// @Tags catalog
// @Produce json
// @Param word_id path string true "Word id"
// @Success 200 {object} httptransport.WordResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /words/{word_id} [get]
func (h Handler) GetWordHandler(ctx context.Context, wordID string) (httptransport.WordResponse, error) {
	item, err := h.GetWord.Execute(ctx, wordID)
	if err != nil {
		return httptransport.WordResponse{}, err
	}
	return mapWord(item), nil
}

// CreateWordHandler godoc
// @Summary Create a word
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateWordRequest true "Word"
// @Success 200 {object} httptransport.WordResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /words [post]
func (h Handler) CreateWordHandler(
	ctx context.Context,
	actor ports.Actor,
	req httptransport.CreateWordRequest,
) (httptransport.WordResponse, error) {
	item, err := h.CreateWord.Execute(ctx, commands.CreateWordCommand{
		Actor:      actor,
		Text:       req.Word,
		LanguageID: req.LanguageID,
		Meanings:   mapMeaningsIn(req.Meanings),
	})
	if err != nil {
		return httptransport.WordResponse{}, err
	}
	return mapWord(item), nil
}

// UpdateWordHandler takes the raw body so unknown keys survive into the ledger.
// @Summary Update a word
// @Description Applies only word and meanings. The whole body is recorded as the contribution details.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param word_id path string true "Word id"
// @Success 200 {object} httptransport.WordResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /words/{word_id} [put]
func (h Handler) UpdateWordHandler(
	ctx context.Context,
	actor ports.Actor,
	wordID string,
	payload json.RawMessage,
) (httptransport.WordResponse, error) {
	item, err := h.UpdateWord.Execute(ctx, commands.UpdateWordCommand{
		Actor:   actor,
		WordID:  wordID,
		Payload: payload,
	})
	if err != nil {
		return httptransport.WordResponse{}, err
	}
	return mapWord(item), nil
}

// SearchHandler godoc
// @Summary Prefix search
// @Tags catalog
// @Produce json
// @Param word query string true "Case-insensitive prefix"
// @Param from_language query string false "Word language"
// @Param to_language query string false "Keep only meanings in this language"
// @Success 200 {array} httptransport.WordResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /search [get]
func (h Handler) SearchHandler(
	ctx context.Context,
	word string,
	fromLanguage string,
	toLanguage string,
) ([]httptransport.WordResponse, error) {
	items, err := h.SearchWords.Execute(ctx, queries.SearchWordsQuery{
		Word:         word,
		FromLanguage: fromLanguage,
		ToLanguage:   toLanguage,
	})
	if err != nil {
		return nil, err
	}
	return mapWords(items), nil
}

func mapLanguage(item entities.Language) httptransport.LanguageResponse {
	return httptransport.LanguageResponse{
		ID:         item.LanguageID,
		Name:       item.Name,
		Code:       item.Code,
		NativeName: item.NativeName,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func mapWords(items []entities.Word) []httptransport.WordResponse {
	result := make([]httptransport.WordResponse, 0, len(items))
	for _, item := range items {
		result = append(result, mapWord(item))
	}
	return result
}

func mapWord(item entities.Word) httptransport.WordResponse {
	meanings := make([]httptransport.MeaningDTO, 0, len(item.Meanings))
	for _, meaning := range item.Meanings {
		meanings = append(meanings, httptransport.MeaningDTO{
			LanguageID: meaning.LanguageID,
			Meaning:    meaning.Meaning,
		})
	}
	return httptransport.WordResponse{
		ID:             item.WordID,
		Word:           item.Text,
		LanguageID:     item.LanguageID,
		Meanings:       meanings,
		CreatedBy:      item.CreatedBy,
		LastModifiedBy: item.LastModifiedBy,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func mapMeaningsIn(items []httptransport.MeaningDTO) []entities.Meaning {
	if items == nil {
		return nil
	}
	result := make([]entities.Meaning, 0, len(items))
	for _, item := range items {
		result = append(result, entities.Meaning{
			LanguageID: item.LanguageID,
			Meaning:    item.Meaning,
		})
	}
	return result
}
