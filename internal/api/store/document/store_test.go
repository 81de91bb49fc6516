package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/internal/api/store/document"
	"github.com/aussiebroadwan/brainsync/pkg/docstore"
	"github.com/aussiebroadwan/brainsync/pkg/docstore/memdb"
)

func ptr(s string) *string { return &s }

func newStore(t *testing.T) (*document.Store, *memdb.DB) {
	t.Helper()
	db := memdb.New()
	return document.NewStore(db), db
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	id, err := st.Users().CreateUser(ctx, domain.User{
		Email:              "a@example.com",
		PasswordHash:       "$argon2id$stub",
		FullName:           "Ada",
		LanguagePreference: "fr",
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	require.NoError(t, err)
	require.Equal(t, "1", id)

	byEmail, err := st.Users().GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.User{
		ID:                 "1",
		Email:              "a@example.com",
		PasswordHash:       "$argon2id$stub",
		FullName:           "Ada",
		LanguagePreference: "fr",
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, byEmail)

	byID, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, byEmail, byID)

	_, err = st.Users().GetUserByEmail(ctx, "A@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByID(ctx, "404")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DefaultsForSparseDocuments(t *testing.T) {
	ctx := context.Background()
	st, db := newStore(t)

	id, err := db.Collection(document.UsersCollection).InsertOne(ctx, docstore.Document{"email": "legacy@example.com"})
	require.NoError(t, err)

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultLanguagePreference, u.LanguagePreference)
	require.True(t, u.IsActive)
	require.True(t, u.CreatedAt.IsZero())
}

func TestUsers_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	id, err := st.Users().CreateUser(ctx, domain.User{Email: "a@example.com", PasswordHash: "old", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	later := created.Add(time.Hour)
	require.NoError(t, st.Users().UpdatePasswordHash(ctx, id, "new", later))

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new", u.PasswordHash)
	require.Equal(t, created, u.CreatedAt)
	require.Equal(t, later, u.UpdatedAt)

	err = st.Users().UpdatePasswordHash(ctx, "404", "x", later)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func seedTranslations(t *testing.T, st store.Store, texts ...string) []string {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 0, len(texts))
	for i, text := range texts {
		at := base.Add(time.Duration(i) * time.Minute)
		id, err := st.Translations().CreateTranslation(context.Background(), domain.Translation{
			UserID:          "u1",
			SourceText:      ptr(text),
			SourceLanguage:  "en",
			TargetLanguage:  "hi",
			TranslationType: domain.TranslationTypeText,
			CreatedAt:       at,
			UpdatedAt:       at,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func sourceTexts(ts []domain.Translation) []string {
	out := make([]string, 0, len(ts))
	for _, tr := range ts {
		out = append(out, *tr.SourceText)
	}
	return out
}

func TestTranslations_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	id, err := st.Translations().CreateTranslation(ctx, domain.Translation{
		UserID:          "u1",
		SourceLanguage:  "en",
		TargetLanguage:  "ta",
		ImageFileURL:    ptr("https://cdn.example.com/a.png"),
		TranslationType: domain.TranslationTypeImage,
		CreatedAt:       at,
		UpdatedAt:       at,
	})
	require.NoError(t, err)

	got, err := st.Translations().GetTranslationByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "u1", got.UserID)
	require.Nil(t, got.SourceText)
	require.Nil(t, got.BrailleOutput)
	require.Equal(t, "https://cdn.example.com/a.png", *got.ImageFileURL)
	require.Equal(t, "ta", got.TargetLanguage)
	require.Equal(t, at, got.CreatedAt)

	_, err = st.Translations().GetTranslationByID(ctx, "404")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTranslations_List(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	seedTranslations(t, st, "Hello World", "goodbye", "say HELLO")

	t.Run("newest first", func(t *testing.T) {
		got, err := st.Translations().ListTranslations(ctx, store.ListTranslationsParams{})
		require.NoError(t, err)
		require.Equal(t, []string{"say HELLO", "goodbye", "Hello World"}, sourceTexts(got))
	})

	t.Run("limit", func(t *testing.T) {
		got, err := st.Translations().ListTranslations(ctx, store.ListTranslationsParams{Limit: 1})
		require.NoError(t, err)
		require.Equal(t, []string{"say HELLO"}, sourceTexts(got))
	})

	t.Run("search", func(t *testing.T) {
		got, err := st.Translations().ListTranslations(ctx, store.ListTranslationsParams{Search: "hello"})
		require.NoError(t, err)
		require.Equal(t, []string{"say HELLO", "Hello World"}, sourceTexts(got))
	})

	t.Run("search braille output", func(t *testing.T) {
		got, err := st.Translations().ListTranslations(ctx, store.ListTranslationsParams{Search: "⠓⠑"})
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestTranslations_Update(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	ids := seedTranslations(t, st, "hello")

	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	err := st.Translations().UpdateTranslation(ctx, ids[0], store.TranslationPatch{
		BrailleOutput: ptr("⠓⠑⠇⠇⠕"),
		UpdatedAt:     later,
	})
	require.NoError(t, err)

	got, err := st.Translations().GetTranslationByID(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, "⠓⠑⠇⠇⠕", *got.BrailleOutput)
	require.Nil(t, got.TranslatedText)
	require.Equal(t, "hi", got.TargetLanguage)
	require.Equal(t, later, got.UpdatedAt)

	// Search now also matches the braille output.
	found, err := st.Translations().ListTranslations(ctx, store.ListTranslationsParams{Search: "⠓⠑"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	err = st.Translations().UpdateTranslation(ctx, "404", store.TranslationPatch{UpdatedAt: later})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTranslations_Delete(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	ids := seedTranslations(t, st, "a", "b")

	require.NoError(t, st.Translations().DeleteTranslation(ctx, ids[0]))
	require.ErrorIs(t, st.Translations().DeleteTranslation(ctx, ids[0]), store.ErrNotFound)

	n, err := st.Translations().CountTranslations(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestTranslations_CountByType(t *testing.T) {
	ctx := context.Background()
	st, db := newStore(t)

	for _, typ := range []string{"text", "image", "text", "sign-language"} {
		_, err := st.Translations().CreateTranslation(ctx, domain.Translation{TranslationType: typ})
		require.NoError(t, err)
	}
	_, err := db.Collection(document.TranslationsCollection).InsertOne(ctx, docstore.Document{"source_text": "untyped"})
	require.NoError(t, err)

	counts, err := st.Translations().CountByType(ctx)
	require.NoError(t, err)
	require.Equal(t, []store.TypeCount{
		{Type: "text", Count: 2},
		{Type: "image", Count: 1},
		{Type: "sign-language", Count: 1},
		{Type: "null", Count: 1},
	}, counts)
}

func TestStore_PingClose(t *testing.T) {
	st, _ := newStore(t)
	require.NoError(t, st.Ping(context.Background()))
	require.NoError(t, st.Close(context.Background()))
}
