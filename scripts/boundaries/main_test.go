package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, root string, rel string, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCollectViolationsFlagsCrossContextAndLayerImports(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "lexicon/catalog-service/application/commands/create.go", `package commands

import (
	"context"

	"example.com/dict/contexts/lexicon/catalog-service/adapters/memory"
	"example.com/dict/contexts/lexicon/catalog-service/ports"
	"example.com/dict/contexts/lexicon/contribution-ledger/ports"
)
`)
	writeSource(t, root, "lexicon/catalog-service/domain/entities/word.go", `package entities

import "example.com/dict/internal/platform/config"
`)
	writeSource(t, root, "lexicon/catalog-service/adapters/memory/store.go", `package memory

import "example.com/dict/contexts/lexicon/catalog-service/domain/entities"
`)

	violations := collectViolations(root, "example.com/dict")
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %+v", len(violations), violations)
	}

	rules := map[string]bool{}
	for _, v := range violations {
		rules[v.Rule] = true
	}
	for _, expected := range []string{
		"application must not import adapters",
		"cross-context imports are forbidden",
		"contexts must not import runtime infrastructure",
	} {
		if !rules[expected] {
			t.Fatalf("expected rule %q in %+v", expected, violations)
		}
	}
}

func TestCollectViolationsPassesCleanTree(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "identity-access/identity-service/ports/ports.go", `package ports

import "example.com/dict/contexts/identity-access/identity-service/domain/entities"
`)
	writeSource(t, root, "identity-access/identity-service/module.go", `package identityservice

import "example.com/dict/contexts/identity-access/identity-service/adapters/memory"
`)
	if violations := collectViolations(root, "example.com/dict"); len(violations) != 0 {
		t.Fatalf("expected no violations, got %+v", violations)
	}
}

func TestReadModulePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.mod")
	if err := os.WriteFile(path, []byte("// comment\nmodule lexicon\n\ngo 1.24.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := readModulePath(path)
	if err != nil || got != "lexicon" {
		t.Fatalf("expected lexicon, got %q err=%v", got, err)
	}
}
