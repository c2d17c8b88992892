package store

import (
	"sync"

	"hardtrack/internal/model"
	"hardtrack/pkg/storage"
)

// LedgerStore holds the append-only sequence of completed transactions.
// It never mutates or removes an entry; the only write path is the
// staged append used by checkout.
type LedgerStore interface {
	All() []model.Transaction
	StageAppend(tx model.Transaction) (*Staged, error)
	Path() string
}

type ledgerStore struct {
	path         string
	mu           sync.Mutex
	transactions []model.Transaction
}

// OpenLedgerStore loads the ledger. Absent file means an empty ledger;
// a corrupt one is an error.
func OpenLedgerStore(path string) (LedgerStore, error) {
	s := &ledgerStore{path: path, transactions: []model.Transaction{}}
	if _, err := storage.Load(path, &s.transactions); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ledgerStore) Path() string { return s.path }

func (s *ledgerStore) All() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *ledgerStore) StageAppend(tx model.Transaction) (*Staged, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Transaction, 0, len(s.transactions)+1)
	next = append(next, s.transactions...)
	next = append(next, tx)

	data, err := storage.Encode(next)
	if err != nil {
		return nil, err
	}
	return &Staged{
		path: s.path,
		data: data,
		apply: func() {
			s.mu.Lock()
			s.transactions = next
			s.mu.Unlock()
		},
	}, nil
}
