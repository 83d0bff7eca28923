package storage

import (
	"context"
	"testing"

	"github.com/mindslate/hostel-complaints/internal/infrastructure/config"
)

func TestOpen_Memory(t *testing.T) {
	b, err := Open(context.Background(), &config.Config{Storage: config.StorageMemory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Users == nil || b.Complaints == nil {
		t.Fatalf("expected both repositories")
	}
	if b.Check != nil {
		t.Fatalf("memory backend has nothing to ping")
	}
	if err := b.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpen_UnknownStorage(t *testing.T) {
	if _, err := Open(context.Background(), &config.Config{Storage: "sqlite"}); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}
}
