// Package storagetest holds the behavior every storage.Backend must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mmynk/futmanager/internal/storage"
)

// RunBackendTests exercises b through its storage.Backend contract. Keys are
// randomized so the tests can run against a shared server.
func RunBackendTests(t *testing.T, b storage.Backend) {
	t.Helper()
	ctx := context.Background()
	prefix := "futmanager_test_" + uuid.NewString() + "_"

	t.Run("missing key", func(t *testing.T) {
		_, err := b.Get(ctx, prefix+"missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		key := prefix + "players"
		if err := b.Put(ctx, key, []byte(`[{"id":"a"}]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := b.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[{"id": "a"}]` && string(got) != `[{"id":"a"}]` {
			t.Errorf("Unexpected value %s", got)
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		key := prefix + "settings"
		if err := b.Put(ctx, key, []byte(`{"monthlyFee":100}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := b.Put(ctx, key, []byte(`{"monthlyFee":120}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := b.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `{"monthlyFee":120}` && string(got) != `{"monthlyFee": 120}` {
			t.Errorf("Expected replaced value, got %s", got)
		}
	})

	t.Run("collection store on top", func(t *testing.T) {
		store := storage.New(prefixed{b, prefix})
		paid, err := store.TogglePayment(ctx, "BBQ-e1-x")
		if err != nil {
			t.Fatalf("TogglePayment failed: %v", err)
		}
		if !paid {
			t.Error("Expected key to be paid")
		}
		payments, err := store.LoadPayments(ctx)
		if err != nil {
			t.Fatalf("LoadPayments failed: %v", err)
		}
		if !payments.IsPaid("BBQ-e1-x") {
			t.Errorf("Expected registry to contain the key, got %v", payments)
		}
	})
}

// prefixed isolates the collection keys of one test run.
type prefixed struct {
	storage.Backend
	prefix string
}

func (p prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.Backend.Get(ctx, p.prefix+key)
}

func (p prefixed) Put(ctx context.Context, key string, value []byte) error {
	return p.Backend.Put(ctx, p.prefix+key, value)
}
