// Package session ties together the ledger, category set, and budget for
// exactly one authenticated user. A session is constructed at login and
// discarded at logout; nothing about the user lives in package-level state.
package session

import (
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/ledger"
	"github.com/spendwise/spendwise/internal/storage"
)

// Session is the working state of one logged-in user.
type Session struct {
	Username   string
	Ledger     *ledger.Store
	Categories *CategorySet
	files      *storage.FileStore
}

// Open hydrates a session from the user's persisted files. The category set
// always starts from the defaults; it is not persisted across sessions.
func Open(files *storage.FileStore, username string) (*Session, error) {
	txns, err := files.LoadTransactions(username)
	if err != nil {
		return nil, err
	}
	limit, err := files.LoadBudgetLimit(username)
	if err != nil {
		return nil, err
	}

	store := ledger.NewStore(txns)
	store.SetBudgetLimit(limit)

	common.LogDebug("session opened", common.Fields{
		"user":         username,
		"transactions": store.Len(),
		"budget_limit": limit,
	})

	return &Session{
		Username:   username,
		Ledger:     store,
		Categories: DefaultCategories(),
		files:      files,
	}, nil
}

// Save flushes the ledger to the user's transaction file. A failed save
// reports an error and leaves both the file and the in-memory state intact.
func (s *Session) Save() error {
	return s.files.SaveTransactions(s.Username, s.Ledger.All())
}

// SetBudget updates the active budget limit and persists it. Zero disables
// budget checking.
func (s *Session) SetBudget(limit float64) error {
	if limit < 0 {
		return common.ErrInvalidAmount
	}
	if err := s.files.SaveBudgetLimit(s.Username, limit); err != nil {
		return err
	}
	s.Ledger.SetBudgetLimit(limit)
	return nil
}

// Files exposes the underlying file store for report export.
func (s *Session) Files() *storage.FileStore {
	return s.files
}
