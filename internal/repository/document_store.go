package repository

import (
	"context"

	"evseed/internal/model"
)

// DocumentStore creates documents in named collections. Ids and creation
// times are assigned by the store and reported back in the WriteResult.
type DocumentStore interface {
	Create(ctx context.Context, collection string, doc any) (*model.WriteResult, error)
	Close() error
}
