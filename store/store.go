// Package store exposes the primitive document operations the route
// modules are built on: list-all, add-one, update-by-id with partial-merge
// semantics, and delete-by-id. Documents are schemaless; the store assigns
// every document a unique string identifier.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the API.
const (
	Users      = "users"
	Categories = "categories"
	MenuItems  = "menuItems"
	Orders     = "orders"
	Tables     = "tables"
)

// Collections lists every collection the API serves.
var Collections = []string{Users, Categories, MenuItems, Orders, Tables}

// ErrNotFound is returned when an id does not resolve to a document.
// Deleting a missing id reports this too, rather than silently succeeding.
var ErrNotFound = errors.New("document not found")

// WriteError wraps a store-side failure (connectivity, quota, permission)
// on a write path.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write on %s: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Document is a stored document rendered for the API: the store identifier
// under "id" plus every stored field.
type Document = map[string]any

// Store provides collection-level document operations over a Mongo
// database. A single Store is created at boot and injected into every
// route module.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListAll returns every document in the collection as {id, ...fields}.
// Order is whatever the store returns; it is not guaranteed across calls.
func (s *Store) ListAll(ctx context.Context, collection string) ([]Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []Document{}
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, render(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return docs, nil
}

// GetByID returns one document or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, collection, id string) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return render(raw), nil
}

// FindOne returns the first document matching the given field, or
// ErrNotFound.
func (s *Store) FindOne(ctx context.Context, collection, field string, value any) (Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{field: value}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", collection, field, err)
	}
	return render(raw), nil
}

// AddOne inserts a new document and returns the generated identifier.
func (s *Store) AddOne(ctx context.Context, collection string, fields map[string]any) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, bson.M(fields))
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(result.InsertedID), nil
	}
	return oid.Hex(), nil
}

// UpdateByID overlays the given fields onto the document at id, leaving
// every other field untouched. It never creates a document.
func (s *Store) UpdateByID(ctx context.Context, collection, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if len(fields) == 0 {
		// Nothing to merge; still report missing ids.
		_, err := s.GetByID(ctx, collection, id)
		return err
	}
	result, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes the document at id. A missing id is ErrNotFound.
func (s *Store) DeleteByID(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FileNames collects every non-empty "file" field value across all
// collections. The upload janitor treats this set as the live references.
func (s *Store) FileNames(ctx context.Context) (map[string]struct{}, error) {
	names := map[string]struct{}{}
	for _, collection := range Collections {
		cursor, err := s.db.Collection(collection).Find(
			ctx,
			bson.M{"file": bson.M{"$exists": true, "$ne": ""}},
		)
		if err != nil {
			return nil, fmt.Errorf("scan %s for files: %w", collection, err)
		}
		for cursor.Next(ctx) {
			var raw bson.M
			if err := cursor.Decode(&raw); err != nil {
				cursor.Close(ctx)
				return nil, fmt.Errorf("decode %s document: %w", collection, err)
			}
			if name, ok := raw["file"].(string); ok && name != "" {
				names[name] = struct{}{}
			}
		}
		err = cursor.Err()
		cursor.Close(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s for files: %w", collection, err)
		}
	}
	return names, nil
}

// render maps a raw Mongo document to the API shape: _id becomes a string
// "id" field, everything else passes through.
func render(raw bson.M) Document {
	doc := Document{}
	for key, value := range raw {
		if key == "_id" {
			if oid, ok := value.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			} else {
				doc["id"] = fmt.Sprint(value)
			}
			continue
		}
		doc[key] = normalize(value)
	}
	return doc
}

// normalize converts bson container types to plain Go ones so documents
// marshal to JSON the same way regardless of which driver produced them.
func normalize(value any) any {
	switch v := value.(type) {
	case bson.M:
		out := map[string]any{}
		for key, inner := range v {
			out[key] = normalize(inner)
		}
		return out
	case bson.A:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalize(inner)
		}
		return out
	default:
		return value
	}
}
