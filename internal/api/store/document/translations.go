package document

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/docstore"
)

type translationsRepo struct {
	coll docstore.Collection
}

func (r *translationsRepo) CreateTranslation(ctx context.Context, t domain.Translation) (string, error) {
	return r.coll.InsertOne(ctx, docstore.Document{
		"user_id":          t.UserID,
		"source_text":      nullable(t.SourceText),
		"source_language":  t.SourceLanguage,
		"target_language":  t.TargetLanguage,
		"translated_text":  nullable(t.TranslatedText),
		"audio_file_url":   nullable(t.AudioFileURL),
		"image_file_url":   nullable(t.ImageFileURL),
		"braille_output":   nullable(t.BrailleOutput),
		"translation_type": t.TranslationType,
		"created_at":       t.CreatedAt,
		"updated_at":       t.UpdatedAt,
	})
}

func (r *translationsRepo) GetTranslationByID(ctx context.Context, id string) (domain.Translation, error) {
	doc, err := r.coll.FindOne(ctx, docstore.ByID(id))
	if err != nil {
		return domain.Translation{}, mapNotFound(err)
	}
	return mapTranslation(doc), nil
}

func (r *translationsRepo) ListTranslations(
	ctx context.Context,
	p store.ListTranslationsParams,
) ([]domain.Translation, error) {
	filter := docstore.All()
	if p.Search != "" {
		filter = docstore.Or(
			docstore.Match{"source_text": p.Search},
			docstore.Match{"braille_output": p.Search},
		)
	}

	// _id breaks ties between documents created in the same millisecond.
	docs, err := r.coll.Find(ctx, filter).
		Sort("created_at", docstore.Descending).
		Sort(docstore.IDField, docstore.Descending).
		All(ctx, p.Limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Translation, 0, len(docs))
	for _, d := range docs {
		out = append(out, mapTranslation(d))
	}
	return out, nil
}

func (r *translationsRepo) UpdateTranslation(ctx context.Context, id string, p store.TranslationPatch) error {
	set := docstore.Document{"updated_at": p.UpdatedAt}
	if p.TranslatedText != nil {
		set["translated_text"] = *p.TranslatedText
	}
	if p.BrailleOutput != nil {
		set["braille_output"] = *p.BrailleOutput
	}
	if p.TargetLanguage != nil {
		set["target_language"] = *p.TargetLanguage
	}

	n, err := r.coll.UpdateOne(ctx, docstore.ByID(id), set)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *translationsRepo) DeleteTranslation(ctx context.Context, id string) error {
	n, err := r.coll.DeleteOne(ctx, docstore.ByID(id))
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *translationsRepo) CountTranslations(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, docstore.All())
}

func (r *translationsRepo) CountByType(ctx context.Context) ([]store.TypeCount, error) {
	groups, err := r.coll.Aggregate(ctx, "translation_type")
	if err != nil {
		return nil, err
	}

	out := make([]store.TypeCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, store.TypeCount{Type: groupKey(g.Key), Count: g.Count})
	}
	return out, nil
}

// groupKey renders an aggregation key the way it would appear as a JSON
// object key; a missing type becomes "null".
func groupKey(k any) string {
	switch v := k.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func mapTranslation(d docstore.Document) domain.Translation {
	return domain.Translation{
		ID:              d.ID(),
		UserID:          stringField(d, "user_id"),
		SourceText:      optionalString(d, "source_text"),
		SourceLanguage:  stringFieldOr(d, "source_language", domain.DefaultSourceLanguage),
		TargetLanguage:  stringFieldOr(d, "target_language", domain.DefaultTargetLanguage),
		TranslatedText:  optionalString(d, "translated_text"),
		BrailleOutput:   optionalString(d, "braille_output"),
		AudioFileURL:    optionalString(d, "audio_file_url"),
		ImageFileURL:    optionalString(d, "image_file_url"),
		TranslationType: stringField(d, "translation_type"),
		CreatedAt:       timeField(d, "created_at"),
		UpdatedAt:       timeField(d, "updated_at"),
	}
}
