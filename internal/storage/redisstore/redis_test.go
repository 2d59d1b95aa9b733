package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/mmynk/futmanager/internal/storage/storagetest"
)

func TestBackend(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	b, err := New(context.Background(), url)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer b.Close()

	storagetest.RunBackendTests(t, b)
}
