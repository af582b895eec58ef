package repository

import (
	"context"
	"errors"
	"fmt"

	"evseed/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore opens a Firestore client bound to projectID. When
// FIRESTORE_EMULATOR_HOST is set the client talks to the emulator.
func NewFirestoreStore(ctx context.Context, projectID string, opts ...option.ClientOption) (DocumentStore, error) {
	if projectID == "" {
		return nil, errors.New("GCP Project ID is not set")
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &firestoreStore{client: client}, nil
}

// Create adds doc to collection under a generated document id.
func (s *firestoreStore) Create(ctx context.Context, collection string, doc any) (*model.WriteResult, error) {
	ref, wr, err := s.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return &model.WriteResult{
		Collection: collection,
		ID:         ref.ID,
		CreatedAt:  wr.UpdateTime,
	}, nil
}

func (s *firestoreStore) Close() error {
	return s.client.Close()
}
