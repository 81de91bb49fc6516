package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/slogx"
)

type CreateTranslationInput struct {
	// UserID is the owning user; empty falls back to domain.PlaceholderUserID.
	UserID          string
	SourceText      *string
	SourceLanguage  string
	TargetLanguage  string
	TranslatedText  *string
	TranslationType string
	AudioFileURL    *string
	ImageFileURL    *string
}

// UpdateTranslationInput holds the editable fields. Nil leaves a field as is.
type UpdateTranslationInput struct {
	TranslatedText *string
	BrailleOutput  *string
	TargetLanguage *string
}

type TranslationService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Create records a translation request. braille_output is always unset on
// creation and only filled in later through Update.
func (s *TranslationService) Create(ctx context.Context, in CreateTranslationInput) (domain.Translation, error) {
	if strings.TrimSpace(in.TranslationType) == "" {
		return domain.Translation{}, fmt.Errorf("%w: translation_type is required", ErrValidation)
	}

	now := s.now()
	t := domain.Translation{
		UserID:          in.UserID,
		SourceText:      in.SourceText,
		SourceLanguage:  in.SourceLanguage,
		TargetLanguage:  in.TargetLanguage,
		TranslatedText:  in.TranslatedText,
		BrailleOutput:   nil,
		AudioFileURL:    in.AudioFileURL,
		ImageFileURL:    in.ImageFileURL,
		TranslationType: in.TranslationType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if t.UserID == "" {
		t.UserID = domain.PlaceholderUserID
	}
	if t.SourceLanguage == "" {
		t.SourceLanguage = domain.DefaultSourceLanguage
	}
	if t.TargetLanguage == "" {
		t.TargetLanguage = domain.DefaultTargetLanguage
	}

	id, err := s.Store.Translations().CreateTranslation(ctx, t)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("create translation: %w", err)
	}
	t.ID = id

	slogx.FromContext(ctx).Debug("translation created",
		"translation_id", id,
		"translation_type", t.TranslationType,
	)
	return t, nil
}

// List returns history newest first. limit <= 0 returns everything; search
// is a case-insensitive substring over source_text and braille_output.
func (s *TranslationService) List(ctx context.Context, limit int, search string) ([]domain.Translation, error) {
	out, err := s.Store.Translations().ListTranslations(ctx, store.ListTranslationsParams{
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return out, nil
}

func (s *TranslationService) Update(ctx context.Context, id string, in UpdateTranslationInput) (domain.Translation, error) {
	err := s.Store.Translations().UpdateTranslation(ctx, id, store.TranslationPatch{
		TranslatedText: in.TranslatedText,
		BrailleOutput:  in.BrailleOutput,
		TargetLanguage: in.TargetLanguage,
		UpdatedAt:      s.now(),
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Translation{}, ErrNotFound
	}
	if err != nil {
		return domain.Translation{}, fmt.Errorf("update translation: %w", err)
	}

	t, err := s.Store.Translations().GetTranslationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		// deleted between the update and the read back
		return domain.Translation{}, ErrNotFound
	}
	if err != nil {
		return domain.Translation{}, fmt.Errorf("get translation: %w", err)
	}
	return t, nil
}

func (s *TranslationService) Delete(ctx context.Context, id string) error {
	err := s.Store.Translations().DeleteTranslation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	slogx.FromContext(ctx).Debug("translation deleted", "translation_id", id)
	return nil
}

// Stats counts all translations and breaks them down by type. Known types
// are always present; any other observed type is reported alongside them.
func (s *TranslationService) Stats(ctx context.Context) (domain.TranslationStats, error) {
	total, err := s.Store.Translations().CountTranslations(ctx)
	if err != nil {
		return domain.TranslationStats{}, fmt.Errorf("count translations: %w", err)
	}

	groups, err := s.Store.Translations().CountByType(ctx)
	if err != nil {
		return domain.TranslationStats{}, fmt.Errorf("count by type: %w", err)
	}

	byMethod := make(map[string]int64, len(domain.KnownTranslationTypes)+len(groups))
	for _, t := range domain.KnownTranslationTypes {
		byMethod[t] = 0
	}
	for _, g := range groups {
		byMethod[g.Type] = g.Count
	}

	return domain.TranslationStats{Total: total, ByMethod: byMethod}, nil
}

func (s *TranslationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Truncate(time.Millisecond)
	}
	return time.Now().UTC().Truncate(time.Millisecond)
}
