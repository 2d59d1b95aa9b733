package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/mmynk/futmanager/internal/storage/storagetest"
)

func TestBackend(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	b, err := New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer b.Close()

	storagetest.RunBackendTests(t, b)
}
