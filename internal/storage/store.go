// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/mosquefund/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable wraps failures of the underlying database.
	// Callers treat the requested collection as empty and report the error.
	ErrUnavailable = errors.New("store unavailable")
)

// ProfileStore reads and writes staff profiles.
type ProfileStore interface {
	// ListProfilesByRoles returns every profile whose role is in roles, ordered by name.
	ListProfilesByRoles(ctx context.Context, roles ...models.Role) ([]*models.Profile, error)

	// CreateProfile persists a new profile. The ID is generated when empty.
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

// TransactionStore reads and writes ledger entries.
type TransactionStore interface {
	// CreateTransaction inserts a transaction.
	// The store assigns ID and CreatedAt.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// ListTransactions returns the whole ledger, newest first.
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)

	// ListTransactionsByAuthor returns the transactions created by profileID, newest first.
	ListTransactionsByAuthor(ctx context.Context, profileID string) ([]*models.Transaction, error)
}

// CommitteeStore manages the committee directory.
type CommitteeStore interface {
	ListCommitteeMembers(ctx context.Context) ([]*models.CommitteeMember, error)
	CreateCommitteeMember(ctx context.Context, member *models.CommitteeMember) error
	// DeleteCommitteeMember returns ErrNotFound if the member does not exist.
	DeleteCommitteeMember(ctx context.Context, id string) error
}

// StateStore is a small durable key/value area for application state
// such as the persisted session.
type StateStore interface {
	SaveState(ctx context.Context, key string, value []byte) error
	// LoadState returns ok=false when nothing is stored under key.
	LoadState(ctx context.Context, key string) (value []byte, ok bool, err error)
	DeleteState(ctx context.Context, key string) error
}

// Store defines the full set of storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ProfileStore
	TransactionStore
	CommitteeStore
	StateStore

	// Close releases any resources held by the store.
	Close() error
}
