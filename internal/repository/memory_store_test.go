package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreCreate(t *testing.T) {
	store := NewMemoryStore()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	wr, err := store.Create(context.Background(), "users", map[string]any{"first_name": "John"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if wr.ID == "" {
		t.Fatal("expected a generated id")
	}
	if wr.Collection != "users" || !wr.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected write result: %+v", wr)
	}

	docs := store.Documents("users")
	if len(docs) != 1 || docs[0].ID != wr.ID {
		t.Fatalf("unexpected stored documents: %+v", docs)
	}
	if store.Count("chargers") != 0 || store.Total() != 1 {
		t.Fatalf("unexpected counts: chargers=%d total=%d", store.Count("chargers"), store.Total())
	}
}

func TestMemoryStoreFailOn(t *testing.T) {
	store := NewMemoryStore()
	boom := errors.New("boom")
	store.FailOn("chargers", 2, boom)
	ctx := context.Background()

	if _, err := store.Create(ctx, "chargers", 1); err != nil {
		t.Fatalf("first insert should succeed: %v", err)
	}
	if _, err := store.Create(ctx, "chargers", 2); !errors.Is(err, boom) {
		t.Fatalf("second insert should fail with injected error, got %v", err)
	}
	if _, err := store.Create(ctx, "chargers", 3); err != nil {
		t.Fatalf("third insert should succeed: %v", err)
	}
	if store.Count("chargers") != 2 {
		t.Fatalf("expected 2 stored chargers, got %d", store.Count("chargers"))
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := store.Create(context.Background(), "users", 1); err == nil {
		t.Fatal("expected error after Close")
	}
}
