package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. The document driver implements it
// over either database backend; services never see which one is active.
type Store interface {
	Users() Users
	Translations() Translations

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts u and returns the store-assigned id. A unique index
	// violation is reported as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (string, error)

	// GetUserByEmail matches the email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpdatePasswordHash sets hashed_password and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string, at time.Time) error
}

// ListTranslationsParams selects a page of history, newest first.
type ListTranslationsParams struct {
	// Limit <= 0 means no limit.
	Limit int

	// Search is a case-insensitive substring matched against source_text
	// and braille_output. Empty means no filter.
	Search string
}

// TranslationPatch carries the mutable fields of a translation. Nil fields
// are left untouched.
type TranslationPatch struct {
	TranslatedText *string
	BrailleOutput  *string
	TargetLanguage *string
	UpdatedAt      time.Time
}

// TypeCount is one row of the per-type aggregation.
type TypeCount struct {
	Type  string
	Count int64
}

type Translations interface {
	CreateTranslation(ctx context.Context, t domain.Translation) (string, error)
	GetTranslationByID(ctx context.Context, id string) (domain.Translation, error)
	ListTranslations(ctx context.Context, p ListTranslationsParams) ([]domain.Translation, error)

	// UpdateTranslation returns ErrNotFound when no document matches id.
	UpdateTranslation(ctx context.Context, id string, p TranslationPatch) error

	// DeleteTranslation returns ErrNotFound when nothing was deleted.
	DeleteTranslation(ctx context.Context, id string) error

	CountTranslations(ctx context.Context) (int64, error)

	// CountByType groups translations by translation_type.
	CountByType(ctx context.Context) ([]TypeCount, error)
}
