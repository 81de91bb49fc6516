// Package memdb is an in-memory docstore driver for development and tests.
//
// Identifiers are a per-collection counter starting at 1. Find iterates
// newest-first unless a cursor is sorted ascending; sorting only flips the
// insertion order, the sort field itself is not inspected.
package memdb

import (
	"context"
	"strconv"
	"sync"

	"github.com/aussiebroadwan/brainsync/pkg/docstore"
)

// DB is an in-memory docstore.Database.
type DB struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

var _ docstore.Database = (*DB)(nil)

// New returns an empty in-memory database.
func New() *DB {
	return &DB{collections: make(map[string]*Collection)}
}

// Collection returns the named collection, creating it on first use.
func (db *DB) Collection(name string) docstore.Collection {
	return db.collection(name)
}

func (db *DB) collection(name string) *Collection {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.collections[name]
	if !ok {
		c = &Collection{nextID: 1}
		db.collections[name] = c
	}
	return c
}

func (db *DB) Ping(context.Context) error  { return nil }
func (db *DB) Close(context.Context) error { return nil }

// Collection holds documents in insertion order. Writers are serialized,
// readers share the lock.
type Collection struct {
	mu     sync.RWMutex
	docs   []docstore.Document
	nextID int
}

var _ docstore.Collection = (*Collection)(nil)

func (c *Collection) InsertOne(_ context.Context, doc docstore.Document) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := strconv.Itoa(c.nextID)
	c.nextID++

	stored := doc.Clone()
	if stored == nil {
		stored = docstore.Document{}
	}
	stored[docstore.IDField] = id
	c.docs = append(c.docs, stored)
	return id, nil
}

func (c *Collection) Find(_ context.Context, filter docstore.Filter) docstore.Cursor {
	return &cursor{coll: c, filter: filter, direction: docstore.Descending}
}

func (c *Collection) FindOne(_ context.Context, filter docstore.Filter) (docstore.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := len(c.docs) - 1; i >= 0; i-- {
		if filter.Matches(c.docs[i]) {
			return c.docs[i].Clone(), nil
		}
	}
	return nil, docstore.ErrNoDocuments
}

func (c *Collection) UpdateOne(_ context.Context, filter docstore.Filter, set docstore.Document) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if !filter.Matches(d) {
			continue
		}
		updated := d.Clone()
		for k, v := range set {
			if k == docstore.IDField {
				continue
			}
			updated[k] = v
		}
		c.docs[i] = updated
		return 1, nil
	}
	return 0, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter docstore.Filter) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if filter.Matches(d) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) CountDocuments(_ context.Context, filter docstore.Filter) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if filter.IsEmpty() {
		return int64(len(c.docs)), nil
	}

	var n int64
	for _, d := range c.docs {
		if filter.Matches(d) {
			n++
		}
	}
	return n, nil
}

func (c *Collection) Aggregate(_ context.Context, field string) ([]docstore.GroupCount, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []docstore.GroupCount
	index := make(map[any]int)
	for _, d := range c.docs {
		key := d[field]
		if !groupable(key) {
			continue
		}
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, docstore.GroupCount{Key: key, Count: 1})
	}
	return out, nil
}

type cursor struct {
	coll      *Collection
	filter    docstore.Filter
	direction int
}

func (cur *cursor) Sort(_ string, direction int) docstore.Cursor {
	next := *cur
	if direction >= 0 {
		next.direction = docstore.Ascending
	} else {
		next.direction = docstore.Descending
	}
	return &next
}

func (cur *cursor) All(_ context.Context, limit int) ([]docstore.Document, error) {
	c := cur.coll
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []docstore.Document{}
	take := func(d docstore.Document) bool {
		if !cur.filter.Matches(d) {
			return true
		}
		out = append(out, d.Clone())
		return limit <= 0 || len(out) < limit
	}

	if cur.direction == docstore.Ascending {
		for _, d := range c.docs {
			if !take(d) {
				break
			}
		}
	} else {
		for i := len(c.docs) - 1; i >= 0; i-- {
			if !take(c.docs[i]) {
				break
			}
		}
	}
	return out, nil
}

// groupable reports whether v can be used as a map key.
func groupable(v any) bool {
	switch v.(type) {
	case nil, string, bool, int, int32, int64, float64:
		return true
	default:
		return false
	}
}
