// Package refcon mints and resolves correlation tokens for callback
// registrations. The host ABI only carries a pointer-sized opaque value per
// registration; this table maps those values back to the owning
// registration records, the same role runtime/cgo.Handle plays for cgo
// callbacks.
//
// Tokens are never reused, so a stale token held by a misbehaving host
// resolves to nothing instead of to an unrelated record. Zero is never
// minted and never resolves.
package refcon

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// Table owns the token to record mapping. The host's callback model is
// single threaded, so Table does no locking; all access must happen on the
// host's thread.
type Table struct {
	next    entities.Token
	records map[entities.Token]any
}

// NewTable returns an empty token table.
func NewTable() *Table {
	return &Table{next: 1, records: make(map[entities.Token]any)}
}

// Put stores a record and mints a fresh token for it.
func (t *Table) Put(record any) entities.Token {
	tok := t.next
	t.next++
	t.records[tok] = record
	return tok
}

// Get resolves a token to its record. A zero, unknown, or already released
// token resolves to nothing.
func (t *Table) Get(tok entities.Token) (any, bool) {
	if tok == 0 {
		return nil, false
	}
	record, ok := t.records[tok]
	return record, ok
}

// Release forgets a token. Releasing a token twice is a no-op; the token is
// never handed out again.
func (t *Table) Release(tok entities.Token) {
	delete(t.records, tok)
}

// Len returns the number of live registrations in the table.
func (t *Table) Len() int { return len(t.records) }
