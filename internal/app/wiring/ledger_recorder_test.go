package wiring

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	catalogports "lexicon/contexts/lexicon/catalog-service/ports"
	ledger "lexicon/contexts/lexicon/contribution-ledger"
	"lexicon/internal/platform/metrics"
)

type countingStore struct {
	mu     sync.Mutex
	counts map[string]int
	ranks  map[string]int
}

func newCountingStore() *countingStore {
	return &countingStore{counts: map[string]int{}, ranks: map[string]int{}}
}

func (s *countingStore) IncrementContributionCount(_ context.Context, userID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[userID]++
	return nil
}

func (s *countingStore) IncrementContributorRank(_ context.Context, userID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks[userID]++
	return nil
}

func TestLedgerRecorderAppendsAndAdvancesCounters(t *testing.T) {
	counters := newCountingStore()
	module := ledger.NewInMemoryModule(counters, slog.Default())
	recorder := LedgerRecorder{Ledger: module, Metrics: metrics.New("lexicon_test")}

	err := recorder.RecordContribution(context.Background(), catalogports.ContributionRecord{
		UserID:        "user-1",
		WordID:        "word-1",
		Type:          catalogports.ContributionTypeAdd,
		Details:       json.RawMessage(`{"word":"hola"}`),
		ObservedCount: 0,
	})
	if err != nil {
		t.Fatalf("record contribution: %v", err)
	}
	if counters.counts["user-1"] != 1 {
		t.Fatalf("expected count 1, got %d", counters.counts["user-1"])
	}
	if counters.ranks["user-1"] != 1 {
		t.Fatalf("expected rank bump on first contribution, got %d", counters.ranks["user-1"])
	}

	items, err := module.Handler.ListContributionsHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list contributions: %v", err)
	}
	if len(items) != 1 || items[0].ContributionType != "add" {
		t.Fatalf("expected one add contribution, got %+v", items)
	}
}

func TestLedgerRecorderRejectsUnknownType(t *testing.T) {
	module := ledger.NewInMemoryModule(newCountingStore(), slog.Default())
	recorder := LedgerRecorder{Ledger: module}

	err := recorder.RecordContribution(context.Background(), catalogports.ContributionRecord{
		UserID:  "user-1",
		WordID:  "word-1",
		Type:    "delete",
		Details: json.RawMessage(`{}`),
	})
	if err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
