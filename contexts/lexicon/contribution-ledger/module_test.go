package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	ledger "lexicon/contexts/lexicon/contribution-ledger"
	"lexicon/contexts/lexicon/contribution-ledger/application/commands"
	"lexicon/contexts/lexicon/contribution-ledger/domain/entities"
	domainerrors "lexicon/contexts/lexicon/contribution-ledger/domain/errors"
)

type counterStub struct {
	mu       sync.Mutex
	counts   map[string]int
	ranks    map[string]int
	countErr error
}

func newCounterStub() *counterStub {
	return &counterStub{counts: map[string]int{}, ranks: map[string]int{}}
}

func (c *counterStub) IncrementContributionCount(_ context.Context, userID string, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.countErr != nil {
		return c.countErr
	}
	c.counts[userID]++
	return nil
}

func (c *counterStub) IncrementContributorRank(_ context.Context, userID string, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ranks[userID]++
	return nil
}

func (c *counterStub) snapshot(userID string) (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[userID], c.ranks[userID]
}

func TestRankAdvancesOnPreIncrementMultiplesOfTen(t *testing.T) {
	counters := newCounterStub()
	module := ledger.NewInMemoryModule(counters, nil)
	ctx := context.Background()

	expectRank := map[int]int{1: 1, 10: 1, 11: 2, 20: 2, 21: 3}
	for i := 1; i <= 21; i++ {
		observed, _ := counters.snapshot("user-1")
		if _, err := module.Handler.Record.Execute(ctx, commands.RecordContributionCommand{
			UserID:        "user-1",
			WordID:        "word-1",
			Type:          entities.ContributionTypeEdit,
			Details:       json.RawMessage(`{"word":"x"}`),
			ObservedCount: observed,
		}); err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
		count, rank := counters.snapshot("user-1")
		if count != i {
			t.Fatalf("expected count %d, got %d", i, count)
		}
		if want, ok := expectRank[i]; ok && rank != want {
			t.Fatalf("after %d contributions expected rank %d, got %d", i, want, rank)
		}
	}

	items, err := module.Handler.ListContributionsHandler(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 21 {
		t.Fatalf("expected 21 entries, got %d", len(items))
	}
}

func TestRecordKeepsDetailsVerbatim(t *testing.T) {
	module := ledger.NewInMemoryModule(newCounterStub(), nil)
	ctx := context.Background()
	details := json.RawMessage(`{"meanings": [], "unknown_key": {"nested": true}}`)

	result, err := module.Handler.Record.Execute(ctx, commands.RecordContributionCommand{
		UserID:  "user-1",
		WordID:  "word-1",
		Type:    entities.ContributionTypeEdit,
		Details: details,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !result.RankAdvanced {
		t.Fatalf("expected first contribution to advance rank")
	}

	items, err := module.Handler.ListContributionsHandler(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if string(items[0].ChangeDetails) != string(details) {
		t.Fatalf("expected details verbatim, got %s", string(items[0].ChangeDetails))
	}
	if items[0].ContributionType != "edit" || items[0].WordID != "word-1" {
		t.Fatalf("unexpected entry: %+v", items[0])
	}
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	counters := newCounterStub()
	module := ledger.NewInMemoryModule(counters, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  commands.RecordContributionCommand
		want error
	}{
		{
			name: "translation reserved",
			cmd:  commands.RecordContributionCommand{UserID: "u", WordID: "w", Type: entities.ContributionTypeTranslation, Details: json.RawMessage(`{}`)},
			want: domainerrors.ErrUnsupportedContributionType,
		},
		{
			name: "missing word",
			cmd:  commands.RecordContributionCommand{UserID: "u", Type: entities.ContributionTypeAdd, Details: json.RawMessage(`{}`)},
			want: domainerrors.ErrInvalidContribution,
		},
		{
			name: "malformed details",
			cmd:  commands.RecordContributionCommand{UserID: "u", WordID: "w", Type: entities.ContributionTypeAdd, Details: json.RawMessage(`{"word":`)},
			want: domainerrors.ErrInvalidContribution,
		},
	}
	for _, tc := range cases {
		if _, err := module.Handler.Record.Execute(ctx, tc.cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if count, rank := counters.snapshot("u"); count != 0 || rank != 0 {
		t.Fatalf("expected counters untouched, got count=%d rank=%d", count, rank)
	}
}

func TestCounterFailureSurfacesAfterAppend(t *testing.T) {
	counters := newCounterStub()
	counters.countErr = errors.New("store down")
	module := ledger.NewInMemoryModule(counters, nil)
	ctx := context.Background()

	_, err := module.Handler.Record.Execute(ctx, commands.RecordContributionCommand{
		UserID: "user-1", WordID: "word-1", Type: entities.ContributionTypeAdd, Details: json.RawMessage(`{"word":"x"}`),
	})
	if err == nil {
		t.Fatalf("expected counter failure to surface")
	}
	items, err := module.Handler.ListContributionsHandler(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected appended entry to remain, got %d", len(items))
	}
}

func TestListContributionsRequiresUser(t *testing.T) {
	module := ledger.NewInMemoryModule(newCounterStub(), nil)
	if _, err := module.Handler.ListContributionsHandler(context.Background(), " "); !errors.Is(err, domainerrors.ErrInvalidUserID) {
		t.Fatalf("expected invalid user id, got %v", err)
	}
}
