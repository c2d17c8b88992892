// Package store owns the persisted documents: the inventory/supplier
// document, the username-keyed user document, and the append-only
// transaction ledger. Every store caches its document in memory and
// rewrites the whole file through pkg/storage on mutation.
package store

import (
	"errors"

	"hardtrack/pkg/storage"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Staged is a document rewrite that has been computed and encoded but
// not yet written. Checkout stages the ledger append and the inventory
// decrement, commits both files together, then applies the in-memory
// side of each.
type Staged struct {
	path  string
	data  []byte
	apply func()
}

// Update exposes the staged rewrite to storage.Commit.
func (s *Staged) Update() storage.Update {
	return storage.Update{Path: s.path, Data: s.data}
}

// Apply installs the staged state in memory. Call only after the commit
// succeeded.
func (s *Staged) Apply() { s.apply() }
