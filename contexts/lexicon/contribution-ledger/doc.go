// Package ledger records contributions and advances contributor counters.
//
// Every successful word write appends exactly one entry, then increments the
// author's contribution count, then bumps the rank when the count observed
// before the request was a multiple of ten. Concurrent writers from one user
// are not serialized, so rank bumps can be skipped or repeated under races.
package ledger
