// Package docstore defines a small document-database contract shared by the
// MongoDB driver and the in-memory driver. Repositories are written against
// these interfaces only and never branch on which backend is active.
package docstore

import (
	"context"
	"errors"
)

// IDField is the key under which every backend stores the document identifier.
const IDField = "_id"

// Sort directions accepted by Cursor.Sort.
const (
	Ascending  = 1
	Descending = -1
)

var (
	// ErrNoDocuments is returned by FindOne when nothing matches.
	ErrNoDocuments = errors.New("docstore: no documents")

	// ErrDuplicateKey reports a unique index violation (MongoDB only).
	ErrDuplicateKey = errors.New("docstore: duplicate key")

	// ErrUnavailable means the backend could not be reached during the
	// startup handshake.
	ErrUnavailable = errors.New("docstore: backend unavailable")
)

// Document is a schema-flexible record. Backends hand documents back with
// the identifier under IDField as a string and timestamps as time.Time.
type Document map[string]any

// ID returns the string identifier of the document, or "" if unset.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// GroupCount is one row of a group-by aggregation.
type GroupCount struct {
	Key   any
	Count int64
}

// Database is a handle on a set of named collections.
type Database interface {
	Collection(name string) Collection

	// Ping verifies the backend is still reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}

// Collection is the set of operations repositories rely on.
type Collection interface {
	// InsertOne stores doc under a freshly assigned identifier and returns it.
	InsertOne(ctx context.Context, doc Document) (string, error)

	// Find returns a lazy cursor over documents matching filter.
	Find(ctx context.Context, filter Filter) Cursor

	// FindOne returns the most recently inserted document matching filter,
	// or ErrNoDocuments.
	FindOne(ctx context.Context, filter Filter) (Document, error)

	// UpdateOne applies set to the first matching document and reports how
	// many documents matched (0 or 1).
	UpdateOne(ctx context.Context, filter Filter, set Document) (int64, error)

	// DeleteOne removes the first matching document and reports how many
	// documents were deleted (0 or 1).
	DeleteOne(ctx context.Context, filter Filter) (int64, error)

	// CountDocuments counts documents matching filter.
	CountDocuments(ctx context.Context, filter Filter) (int64, error)

	// Aggregate counts documents per distinct value of field.
	Aggregate(ctx context.Context, field string) ([]GroupCount, error)
}

// Cursor is a lazy view over a filtered result set.
type Cursor interface {
	// Sort orders the result by field in the given direction.
	Sort(field string, direction int) Cursor

	// All materialises the result. A limit <= 0 means unlimited.
	All(ctx context.Context, limit int) ([]Document, error)
}
