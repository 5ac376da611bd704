package db

import (
	"context"
	"errors"
	"testing"
)

type migratorStub struct {
	calls *[]string
	name  string
	err   error
}

func (m migratorStub) AutoMigrate(context.Context) error {
	*m.calls = append(*m.calls, m.name)
	return m.err
}

func TestConnectRequiresDSN(t *testing.T) {
	if _, err := Connect(context.Background(), ""); err == nil {
		t.Fatalf("expected empty dsn to fail")
	}
}

func TestMigrateStopsAtFirstFailure(t *testing.T) {
	var calls []string
	err := Migrate(context.Background(),
		migratorStub{calls: &calls, name: "users"},
		migratorStub{calls: &calls, name: "words", err: errors.New("boom")},
		migratorStub{calls: &calls, name: "contributions"},
	)
	if err == nil {
		t.Fatalf("expected migrate error")
	}
	if len(calls) != 2 || calls[1] != "words" {
		t.Fatalf("expected to stop after words, got %v", calls)
	}
}

func TestCloseNilIsSafe(t *testing.T) {
	var p *Postgres
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil close to succeed, got %v", err)
	}
}
