// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/futmanager/internal/models"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for the roster, ledgers, settings and payment
// registry. Every collection is read and written whole.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// Redis, memory) without changing the service layer.
type Store interface {
	// LoadPlayers returns the roster. A never-written roster is empty.
	LoadPlayers(ctx context.Context) ([]models.Player, error)
	SavePlayers(ctx context.Context, players []models.Player) error

	// UpdatePlayers applies fn to the current roster and saves the result.
	// Concurrent updates through the same Store are serialized.
	UpdatePlayers(ctx context.Context, fn func([]models.Player) ([]models.Player, error)) ([]models.Player, error)

	// LoadHistory returns the match-day ledger, newest first.
	LoadHistory(ctx context.Context) ([]models.GameHistory, error)
	SaveHistory(ctx context.Context, history []models.GameHistory) error
	UpdateHistory(ctx context.Context, fn func([]models.GameHistory) ([]models.GameHistory, error)) ([]models.GameHistory, error)

	// LoadEvents returns the event ledger, newest first.
	LoadEvents(ctx context.Context) ([]models.BarbecueEvent, error)
	SaveEvents(ctx context.Context, events []models.BarbecueEvent) error
	UpdateEvents(ctx context.Context, fn func([]models.BarbecueEvent) ([]models.BarbecueEvent, error)) ([]models.BarbecueEvent, error)

	// LoadSettings returns the stored settings, or the defaults when none
	// were ever saved.
	LoadSettings(ctx context.Context) (models.FinancialSettings, error)
	SaveSettings(ctx context.Context, settings models.FinancialSettings) error

	// LoadPayments returns the payment registry. A never-written registry is empty.
	LoadPayments(ctx context.Context) (models.PaymentRegistry, error)

	// TogglePayment flips one obligation key and reports its new state.
	TogglePayment(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// Backend is a key/value blob store the collection store is built on.
type Backend interface {
	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	Close() error
}
