package store

import (
	"context"
	"errors"
)

// Record is a raw document as held by the backing store. Reads populate the
// reserved "id" key; writes must not set it.
type Record = map[string]any

// Query describes the only query shape the service needs: equality filters
// combined with a single order-by field and an optional row limit.
type Query struct {
	Filters    map[string]any
	OrderBy    string
	Descending bool
	Limit      int64
}

var (
	ErrNotFound = errors.New("document not found")
)

// Adapter is a thin CRUD wrapper over a remote document collection.
// Create and Update stamp server-assigned createdAt/updatedAt timestamps.
// No multi-document transactional guarantees are offered or used.
type Adapter interface {
	Create(ctx context.Context, collection string, doc Record) (string, error)
	List(ctx context.Context, collection string, q Query) ([]Record, error)
	Get(ctx context.Context, collection string, id string) (Record, error)
	Update(ctx context.Context, collection string, id string, partial Record) error
	Delete(ctx context.Context, collection string, id string) error
}
