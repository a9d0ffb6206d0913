package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/psaswat/testyourmodels/internal/store"
)

// fakeAdapter is an in-memory store.Adapter. failAll simulates an unreachable
// store; failCompound rejects only multi-filter queries, the missing-index
// failure mode of the real backing store.
type fakeAdapter struct {
	collections  map[string][]store.Record
	failAll      bool
	failCompound bool
	nextID       int
	creates      int
}

var errStoreDown = errors.New("store unavailable")

var errNoIndex = errors.New("query requires a composite index")

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{collections: map[string][]store.Record{}}
}

func (f *fakeAdapter) Create(ctx context.Context, collection string, doc store.Record) (string, error) {
	if f.failAll {
		return "", errStoreDown
	}

	f.nextID++
	f.creates++
	id := fmt.Sprintf("doc-%d", f.nextID)

	// Deterministic monotonic timestamps keep recency ordering stable.
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute)

	copied := store.Record{"id": id, "createdAt": stamp, "updatedAt": stamp}
	for k, v := range doc {
		copied[k] = v
	}
	f.collections[collection] = append(f.collections[collection], copied)
	return id, nil
}

func (f *fakeAdapter) List(ctx context.Context, collection string, q store.Query) ([]store.Record, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	if f.failCompound && len(q.Filters) > 1 {
		return nil, errNoIndex
	}

	matched := []store.Record{}
	for _, rec := range f.collections[collection] {
		if matchesFilters(rec, q.Filters) {
			matched = append(matched, rec)
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a, _ := matched[i][q.OrderBy].(time.Time)
			b, _ := matched[j][q.OrderBy].(time.Time)
			if q.Descending {
				return a.After(b)
			}
			return a.Before(b)
		})
	}

	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (f *fakeAdapter) Get(ctx context.Context, collection string, id string) (store.Record, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	for _, rec := range f.collections[collection] {
		if rec["id"] == id {
			return rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAdapter) Update(ctx context.Context, collection string, id string, partial store.Record) error {
	if f.failAll {
		return errStoreDown
	}
	for _, rec := range f.collections[collection] {
		if rec["id"] == id {
			for k, v := range partial {
				rec[k] = v
			}
			rec["updatedAt"] = time.Now().UTC()
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeAdapter) Delete(ctx context.Context, collection string, id string) error {
	if f.failAll {
		return errStoreDown
	}
	records := f.collections[collection]
	for i, rec := range records {
		if rec["id"] == id {
			f.collections[collection] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func matchesFilters(rec store.Record, filters map[string]any) bool {
	for k, v := range filters {
		if rec[k] != v {
			return false
		}
	}
	return true
}
