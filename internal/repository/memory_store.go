package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"evseed/internal/model"

	"github.com/google/uuid"
)

// StoredDocument is a document held by MemoryStore.
type StoredDocument struct {
	ID        string
	Data      any
	CreatedAt time.Time
}

type injectedFailure struct {
	nth int
	err error
}

// MemoryStore is an in-process DocumentStore used by tests and local dry runs.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string][]StoredDocument
	attempts map[string]int
	failures map[string]injectedFailure
	now      func() time.Time
	closed   bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string][]StoredDocument),
		attempts: make(map[string]int),
		failures: make(map[string]injectedFailure),
		now:      time.Now,
	}
}

// FailOn makes the nth (1-based) Create call on collection return err
// without storing anything.
func (m *MemoryStore) FailOn(collection string, nth int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[collection] = injectedFailure{nth: nth, err: err}
}

func (m *MemoryStore) Create(ctx context.Context, collection string, doc any) (*model.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errors.New("memory store: closed")
	}

	m.attempts[collection]++
	if f, ok := m.failures[collection]; ok && f.nth == m.attempts[collection] {
		return nil, f.err
	}

	stored := StoredDocument{
		ID:        uuid.NewString(),
		Data:      doc,
		CreatedAt: m.now().UTC(),
	}
	m.docs[collection] = append(m.docs[collection], stored)

	return &model.WriteResult{
		Collection: collection,
		ID:         stored.ID,
		CreatedAt:  stored.CreatedAt,
	}, nil
}

// Documents returns a copy of the documents in collection, in insert order.
func (m *MemoryStore) Documents(collection string) []StoredDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StoredDocument, len(m.docs[collection]))
	copy(out, m.docs[collection])
	return out
}

// Count returns the number of documents in collection.
func (m *MemoryStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

// Total returns the number of documents across all collections.
func (m *MemoryStore) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, docs := range m.docs {
		n += len(docs)
	}
	return n
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
