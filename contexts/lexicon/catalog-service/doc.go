// Package catalog implements the word and language catalog of the dictionary.
//
// Layering:
// - domain: languages, words, meanings, matching rules, seed data
// - application: commands/queries using explicit ports
// - ports: repository, clock, id and contribution recorder boundaries
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Every successful word write is followed by exactly one contribution record.
// - The contribution ledger is reached only through ports.ContributionRecorder.
package catalog
