// Package document implements store.Store over a docstore.Database, so the
// same repositories run against MongoDB and the in-memory backend.
package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/docstore"
)

// Collection names.
const (
	UsersCollection        = "users"
	TranslationsCollection = "translations"
)

type Store struct {
	db docstore.Database
}

var _ store.Store = (*Store)(nil)

func NewStore(db docstore.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(UsersCollection)}
}

func (s *Store) Translations() store.Translations {
	return &translationsRepo{coll: s.db.Collection(TranslationsCollection)}
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

func (s *Store) Close(ctx context.Context) error { return s.db.Close(ctx) }

func mapNotFound(err error) error {
	if errors.Is(err, docstore.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if errors.Is(err, docstore.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	}
	return err
}

func stringField(d docstore.Document, key string) string {
	s, _ := d[key].(string)
	return s
}

func stringFieldOr(d docstore.Document, key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

func optionalString(d docstore.Document, key string) *string {
	s, ok := d[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func boolFieldOr(d docstore.Document, key string, def bool) bool {
	if b, ok := d[key].(bool); ok {
		return b
	}
	return def
}

func timeField(d docstore.Document, key string) time.Time {
	switch v := d[key].(type) {
	case time.Time:
		return v.UTC()
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// nullable stores nil pointers as a null field rather than omitting it.
func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
