// Package identityservice implements account registration, credential checks,
// and bearer token issuance/resolution for Lexicon.
//
// Layering:
// - domain: user entity, role values, errors
// - application: register/issue-token commands and token/profile queries
// - ports: persistence, password hashing, token signing, clock and ids
// - adapters: bcrypt and JWT implementations, memory and postgres stores, HTTP handler
// - transport: module-private DTOs for HTTP contracts
//
// Contribution counters on the user record are written through the
// CounterStore methods of the repositories; only the contribution ledger calls them.
package identityservice
