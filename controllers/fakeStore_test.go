package controllers_test

import (
	"context"
	"fmt"
	"sync"

	"bean-scene-ordering/store"
)

// fakeStore is an in-memory document store standing in for Mongo. It
// keeps insertion order per collection and can be told to fail its next
// call to exercise the error paths.
type fakeStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]map[string]any
	order    map[string][]string
	nextID   int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:  map[string]map[string]map[string]any{},
		order: map[string][]string{},
	}
}

func (f *fakeStore) failNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

func (f *fakeStore) takeFailure() error {
	err := f.failWith
	f.failWith = nil
	return err
}

func (f *fakeStore) ListAll(_ context.Context, collection string) ([]store.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	docs := []store.Document{}
	for _, id := range f.order[collection] {
		fields, ok := f.docs[collection][id]
		if !ok {
			continue
		}
		doc := store.Document{"id": id}
		for key, value := range fields {
			doc[key] = value
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *fakeStore) FindOne(_ context.Context, collection, field string, value any) (store.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	for _, id := range f.order[collection] {
		fields, ok := f.docs[collection][id]
		if !ok {
			continue
		}
		if fields[field] == value {
			doc := store.Document{"id": id}
			for key, v := range fields {
				doc[key] = v
			}
			return doc, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) AddOne(_ context.Context, collection string, fields map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return "", &store.WriteError{Collection: collection, Err: err}
	}
	f.nextID++
	id := fmt.Sprintf("doc%04d", f.nextID)
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]map[string]any{}
	}
	stored := map[string]any{}
	for key, value := range fields {
		stored[key] = value
	}
	f.docs[collection][id] = stored
	f.order[collection] = append(f.order[collection], id)
	return id, nil
}

func (f *fakeStore) UpdateByID(_ context.Context, collection, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return &store.WriteError{Collection: collection, Err: err}
	}
	stored, ok := f.docs[collection][id]
	if !ok {
		return store.ErrNotFound
	}
	for key, value := range fields {
		stored[key] = value
	}
	return nil
}

func (f *fakeStore) DeleteByID(_ context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return &store.WriteError{Collection: collection, Err: err}
	}
	if _, ok := f.docs[collection][id]; !ok {
		return store.ErrNotFound
	}
	delete(f.docs[collection], id)
	return nil
}

// get returns the stored fields without the id, for direct assertions.
func (f *fakeStore) get(collection, id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[collection][id]
}
