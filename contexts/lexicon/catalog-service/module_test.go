package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	catalog "lexicon/contexts/lexicon/catalog-service"
	domainerrors "lexicon/contexts/lexicon/catalog-service/domain/errors"
	"lexicon/contexts/lexicon/catalog-service/ports"
	httptransport "lexicon/contexts/lexicon/catalog-service/transport/http"
)

type recorderStub struct {
	mu      sync.Mutex
	records []ports.ContributionRecord
	err     error
}

func (r *recorderStub) RecordContribution(_ context.Context, record ports.ContributionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

type catalogFixture struct {
	module   catalog.Module
	recorder *recorderStub
	english  string
	spanish  string
	french   string
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()
	recorder := &recorderStub{}
	module := catalog.NewInMemoryModule(recorder, nil)
	ctx := context.Background()

	ids := map[string]string{}
	for _, req := range []httptransport.CreateLanguageRequest{
		{Name: "English", Code: "en"},
		{Name: "Spanish", Code: "es", NativeName: "Español"},
		{Name: "French", Code: "fr"},
	} {
		language, err := module.Handler.CreateLanguageHandler(ctx, "mod-1", req)
		if err != nil {
			t.Fatalf("create language %s failed: %v", req.Code, err)
		}
		ids[req.Code] = language.ID
	}
	return catalogFixture{
		module:   module,
		recorder: recorder,
		english:  ids["en"],
		spanish:  ids["es"],
		french:   ids["fr"],
	}
}

func (f catalogFixture) createWord(t *testing.T, actor ports.Actor, text string, languageID string, meanings ...httptransport.MeaningDTO) httptransport.WordResponse {
	t.Helper()
	word, err := f.module.Handler.CreateWordHandler(context.Background(), actor, httptransport.CreateWordRequest{
		Word:       text,
		LanguageID: languageID,
		Meanings:   meanings,
	})
	if err != nil {
		t.Fatalf("create word %q failed: %v", text, err)
	}
	return word
}

func TestCreateLanguageValidatesCode(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.module.Handler.CreateLanguageHandler(ctx, "mod-1", httptransport.CreateLanguageRequest{Name: "English again", Code: "EN"})
	if !errors.Is(err, domainerrors.ErrLanguageCodeTaken) {
		t.Fatalf("expected duplicate code, got %v", err)
	}
	_, err = f.module.Handler.CreateLanguageHandler(ctx, "mod-1", httptransport.CreateLanguageRequest{Name: "Klingon", Code: "tlh"})
	if !errors.Is(err, domainerrors.ErrInvalidLanguageInput) {
		t.Fatalf("expected invalid code, got %v", err)
	}
	german, err := f.module.Handler.CreateLanguageHandler(ctx, "mod-1", httptransport.CreateLanguageRequest{Name: "German", Code: "DE"})
	if err != nil {
		t.Fatalf("create language failed: %v", err)
	}
	if german.Code != "de" {
		t.Fatalf("expected normalized code de, got %s", german.Code)
	}

	languages, err := f.module.Handler.ListLanguagesHandler(ctx)
	if err != nil {
		t.Fatalf("list languages failed: %v", err)
	}
	if len(languages) != 4 {
		t.Fatalf("expected 4 languages, got %d", len(languages))
	}
}

func TestSeedLanguagesOnlyFillsEmptyCatalog(t *testing.T) {
	module := catalog.NewInMemoryModule(&recorderStub{}, nil)
	ctx := context.Background()

	inserted, err := module.Handler.SeedLanguages.Execute(ctx)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 10 {
		t.Fatalf("expected 10 seeded languages, got %d", inserted)
	}
	again, err := module.Handler.SeedLanguages.Execute(ctx)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected second seed to be a no-op, got %d", again)
	}
}

func TestCreateWordRecordsAddContribution(t *testing.T) {
	f := newCatalogFixture(t)
	actor := ports.Actor{UserID: "user-1", ContributionCount: 7}

	word := f.createWord(t, actor, "hello", f.english, httptransport.MeaningDTO{LanguageID: f.spanish, Meaning: "hola"})
	if word.CreatedBy != "user-1" || word.LastModifiedBy != "user-1" {
		t.Fatalf("expected actor attribution, got %+v", word)
	}

	if len(f.recorder.records) != 1 {
		t.Fatalf("expected one contribution, got %d", len(f.recorder.records))
	}
	record := f.recorder.records[0]
	if record.Type != ports.ContributionTypeAdd || record.WordID != word.ID || record.ObservedCount != 7 {
		t.Fatalf("unexpected contribution record: %+v", record)
	}
	if string(record.Details) != `{"word":"hello"}` {
		t.Fatalf("expected word details, got %s", string(record.Details))
	}

	duplicate := f.createWord(t, actor, "hello", f.english)
	if duplicate.ID == word.ID {
		t.Fatalf("expected identical word to get a new id")
	}
}

func TestCreateWordRejectsUnknownLanguages(t *testing.T) {
	f := newCatalogFixture(t)
	actor := ports.Actor{UserID: "user-1"}
	ctx := context.Background()

	_, err := f.module.Handler.CreateWordHandler(ctx, actor, httptransport.CreateWordRequest{Word: "hello", LanguageID: "missing"})
	if !errors.Is(err, domainerrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference for word language, got %v", err)
	}
	_, err = f.module.Handler.CreateWordHandler(ctx, actor, httptransport.CreateWordRequest{
		Word:       "hello",
		LanguageID: f.english,
		Meanings:   []httptransport.MeaningDTO{{LanguageID: "missing", Meaning: "?"}},
	})
	if !errors.Is(err, domainerrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference for meaning language, got %v", err)
	}
	_, err = f.module.Handler.CreateWordHandler(ctx, actor, httptransport.CreateWordRequest{Word: " ", LanguageID: f.english})
	if !errors.Is(err, domainerrors.ErrInvalidWordInput) {
		t.Fatalf("expected invalid word input, got %v", err)
	}
	if len(f.recorder.records) != 0 {
		t.Fatalf("expected no contributions for rejected writes, got %d", len(f.recorder.records))
	}
}

func TestUpdateWordAppliesKnownFieldsAndRecordsPayloadVerbatim(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	word := f.createWord(t, ports.Actor{UserID: "user-1"}, "hello", f.english,
		httptransport.MeaningDTO{LanguageID: f.spanish, Meaning: "hola"},
		httptransport.MeaningDTO{LanguageID: f.french, Meaning: "bonjour"},
	)

	payload := json.RawMessage(`{"meanings":[{"language_id":"` + f.french + `","meaning":"salut"}],"created_by":"attacker","note":"typo fix"}`)
	updated, err := f.module.Handler.UpdateWordHandler(ctx, ports.Actor{UserID: "user-2", ContributionCount: 10}, word.ID, payload)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Word != "hello" {
		t.Fatalf("expected word text unchanged, got %s", updated.Word)
	}
	if len(updated.Meanings) != 1 || updated.Meanings[0].Meaning != "salut" {
		t.Fatalf("expected meanings replaced wholesale, got %+v", updated.Meanings)
	}
	if updated.CreatedBy != "user-1" || updated.LastModifiedBy != "user-2" {
		t.Fatalf("expected created_by kept and last_modified_by bumped, got %+v", updated)
	}
	if updated.UpdatedAt.Before(word.UpdatedAt) {
		t.Fatalf("expected updated_at to move forward")
	}

	record := f.recorder.records[len(f.recorder.records)-1]
	if record.Type != ports.ContributionTypeEdit || record.ObservedCount != 10 {
		t.Fatalf("unexpected edit contribution: %+v", record)
	}
	if string(record.Details) != string(payload) {
		t.Fatalf("expected payload recorded verbatim, got %s", string(record.Details))
	}
}

func TestUpdateWordErrors(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	actor := ports.Actor{UserID: "user-1"}
	word := f.createWord(t, actor, "hello", f.english)
	before := len(f.recorder.records)

	_, err := f.module.Handler.UpdateWordHandler(ctx, actor, "missing", json.RawMessage(`{"word":"x"}`))
	if !errors.Is(err, domainerrors.ErrWordNotFound) {
		t.Fatalf("expected word not found, got %v", err)
	}
	_, err = f.module.Handler.UpdateWordHandler(ctx, actor, word.ID, json.RawMessage(`["word"]`))
	if !errors.Is(err, domainerrors.ErrInvalidWordInput) {
		t.Fatalf("expected invalid input for non-object payload, got %v", err)
	}
	_, err = f.module.Handler.UpdateWordHandler(ctx, actor, word.ID, json.RawMessage(`{"word":42}`))
	if !errors.Is(err, domainerrors.ErrInvalidWordInput) {
		t.Fatalf("expected invalid input for non-string word, got %v", err)
	}
	_, err = f.module.Handler.UpdateWordHandler(ctx, actor, word.ID, json.RawMessage(`{"meanings":[{"language_id":"missing","meaning":"x"}]}`))
	if !errors.Is(err, domainerrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", err)
	}
	if len(f.recorder.records) != before {
		t.Fatalf("expected no contributions for failed updates")
	}
}

func TestLedgerFailureLeavesWordInPlace(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.recorder.err = errors.New("ledger unavailable")

	_, err := f.module.Handler.CreateWordHandler(ctx, ports.Actor{UserID: "user-1"}, httptransport.CreateWordRequest{
		Word: "orphan", LanguageID: f.english,
	})
	if err == nil {
		t.Fatalf("expected ledger failure to surface")
	}
	words, err := f.module.Handler.ListWordsHandler(ctx, "", "orphan")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("expected written word to remain, got %d", len(words))
	}
}

func TestListWordsFiltersBySubstringAndLanguage(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	actor := ports.Actor{UserID: "user-1"}
	f.createWord(t, actor, "Bonjour", f.french)
	f.createWord(t, actor, "journal", f.english)
	f.createWord(t, actor, "abc", f.english)

	all, err := f.module.Handler.ListWordsHandler(ctx, "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 words, got %d", len(all))
	}

	jour, err := f.module.Handler.ListWordsHandler(ctx, "", "JOUR")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jour) != 2 {
		t.Fatalf("expected 2 substring matches, got %d", len(jour))
	}

	english, err := f.module.Handler.ListWordsHandler(ctx, f.english, "jour")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(english) != 1 || english[0].Word != "journal" {
		t.Fatalf("expected only journal, got %+v", english)
	}

	literal, err := f.module.Handler.ListWordsHandler(ctx, "", "a.c")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(literal) != 0 {
		t.Fatalf("expected regex metacharacters to be literal, got %d", len(literal))
	}
}

func TestSearchMatchesPrefixAndNarrowsMeanings(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	actor := ports.Actor{UserID: "user-1"}
	f.createWord(t, actor, "Hello", f.english,
		httptransport.MeaningDTO{LanguageID: f.spanish, Meaning: "hola"},
		httptransport.MeaningDTO{LanguageID: f.french, Meaning: "bonjour"},
	)
	f.createWord(t, actor, "help", f.english, httptransport.MeaningDTO{LanguageID: f.french, Meaning: "aide"})
	f.createWord(t, actor, "shell", f.english, httptransport.MeaningDTO{LanguageID: f.spanish, Meaning: "concha"})
	f.createWord(t, actor, "hecho", f.spanish)

	results, err := f.module.Handler.SearchHandler(ctx, "he", "", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 prefix matches, got %d", len(results))
	}

	fromEnglish, err := f.module.Handler.SearchHandler(ctx, "HE", f.english, "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(fromEnglish) != 2 {
		t.Fatalf("expected 2 english matches, got %d", len(fromEnglish))
	}

	toSpanish, err := f.module.Handler.SearchHandler(ctx, "he", f.english, f.spanish)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(toSpanish) != 1 || toSpanish[0].Word != "Hello" {
		t.Fatalf("expected only Hello, got %+v", toSpanish)
	}
	if len(toSpanish[0].Meanings) != 1 || toSpanish[0].Meanings[0].Meaning != "hola" {
		t.Fatalf("expected only the spanish meaning, got %+v", toSpanish[0].Meanings)
	}

	if _, err := f.module.Handler.SearchHandler(ctx, "", "", ""); !errors.Is(err, domainerrors.ErrInvalidSearchQuery) {
		t.Fatalf("expected missing word to be rejected, got %v", err)
	}
}

func TestGetWordNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	if _, err := f.module.Handler.GetWordHandler(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrWordNotFound) {
		t.Fatalf("expected word not found, got %v", err)
	}
}
