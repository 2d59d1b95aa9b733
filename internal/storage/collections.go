package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mmynk/futmanager/internal/models"
)

// Keys under which each collection is stored. They match the keys used by
// earlier versions of the app so exported data can be imported verbatim.
const (
	KeyPlayers  = "futmanager_players"
	KeyHistory  = "futmanager_history"
	KeySettings = "futmanager_finance_settings"
	KeyPayments = "futmanager_payments"
	KeyEvents   = "futmanager_bbqs"
)

// Ensure CollectionStore implements Store
var _ Store = (*CollectionStore)(nil)

// CollectionStore implements Store by keeping each collection as one JSON
// blob in a Backend.
type CollectionStore struct {
	backend Backend

	// mu serializes read-modify-write cycles.
	mu sync.Mutex
}

// New creates a CollectionStore over backend. Closing the store closes the backend.
func New(backend Backend) *CollectionStore {
	return &CollectionStore{backend: backend}
}

// Close closes the backend.
func (s *CollectionStore) Close() error {
	return s.backend.Close()
}

// LoadPlayers returns the roster.
func (s *CollectionStore) LoadPlayers(ctx context.Context) ([]models.Player, error) {
	players := []models.Player{}
	if err := s.load(ctx, KeyPlayers, &players); err != nil {
		return nil, err
	}
	// a stored JSON null decodes to nil
	if players == nil {
		players = []models.Player{}
	}
	return players, nil
}

// SavePlayers replaces the roster.
func (s *CollectionStore) SavePlayers(ctx context.Context, players []models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeyPlayers, players)
}

// UpdatePlayers applies fn to the roster under the store lock.
func (s *CollectionStore) UpdatePlayers(ctx context.Context, fn func([]models.Player) ([]models.Player, error)) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(players)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, KeyPlayers, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LoadHistory returns the match-day ledger.
func (s *CollectionStore) LoadHistory(ctx context.Context) ([]models.GameHistory, error) {
	history := []models.GameHistory{}
	if err := s.load(ctx, KeyHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.GameHistory{}
	}
	return history, nil
}

// SaveHistory replaces the match-day ledger.
func (s *CollectionStore) SaveHistory(ctx context.Context, history []models.GameHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeyHistory, history)
}

// UpdateHistory applies fn to the match-day ledger under the store lock.
func (s *CollectionStore) UpdateHistory(ctx context.Context, fn func([]models.GameHistory) ([]models.GameHistory, error)) ([]models.GameHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(history)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, KeyHistory, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LoadEvents returns the event ledger.
func (s *CollectionStore) LoadEvents(ctx context.Context) ([]models.BarbecueEvent, error) {
	events := []models.BarbecueEvent{}
	if err := s.load(ctx, KeyEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.BarbecueEvent{}
	}
	return events, nil
}

// SaveEvents replaces the event ledger.
func (s *CollectionStore) SaveEvents(ctx context.Context, events []models.BarbecueEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeyEvents, events)
}

// UpdateEvents applies fn to the event ledger under the store lock.
func (s *CollectionStore) UpdateEvents(ctx context.Context, fn func([]models.BarbecueEvent) ([]models.BarbecueEvent, error)) ([]models.BarbecueEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(events)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, KeyEvents, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LoadSettings returns the stored settings or the defaults.
func (s *CollectionStore) LoadSettings(ctx context.Context) (models.FinancialSettings, error) {
	settings := models.DefaultFinancialSettings()
	if err := s.load(ctx, KeySettings, &settings); err != nil {
		return models.FinancialSettings{}, err
	}
	return settings, nil
}

// SaveSettings replaces the settings.
func (s *CollectionStore) SaveSettings(ctx context.Context, settings models.FinancialSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeySettings, settings)
}

// LoadPayments returns the payment registry.
func (s *CollectionStore) LoadPayments(ctx context.Context) (models.PaymentRegistry, error) {
	payments := models.PaymentRegistry{}
	if err := s.load(ctx, KeyPayments, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = models.PaymentRegistry{}
	}
	return payments, nil
}

// TogglePayment flips key in the registry and returns whether it is now paid.
func (s *CollectionStore) TogglePayment(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.LoadPayments(ctx)
	if err != nil {
		return false, err
	}
	payments.Toggle(key)
	if err := s.save(ctx, KeyPayments, payments); err != nil {
		return false, err
	}
	return payments.IsPaid(key), nil
}

// load decodes the blob under key into v. A missing key leaves v untouched.
func (s *CollectionStore) load(ctx context.Context, key string, v any) error {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *CollectionStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
