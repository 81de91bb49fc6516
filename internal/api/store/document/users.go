package document

import (
	"context"
	"time"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/docstore"
)

type usersRepo struct {
	coll docstore.Collection
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (string, error) {
	id, err := r.coll.InsertOne(ctx, docstore.Document{
		"email":               u.Email,
		"hashed_password":     u.PasswordHash,
		"full_name":           u.FullName,
		"language_preference": u.LanguagePreference,
		"is_active":           u.IsActive,
		"created_at":          u.CreatedAt,
		"updated_at":          u.UpdatedAt,
	})
	if err != nil {
		return "", mapDuplicate(err)
	}
	return id, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	doc, err := r.coll.FindOne(ctx, docstore.Eq("email", email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	doc, err := r.coll.FindOne(ctx, docstore.ByID(id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string, at time.Time) error {
	n, err := r.coll.UpdateOne(ctx, docstore.ByID(userID), docstore.Document{
		"hashed_password": newHash,
		"updated_at":      at,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapUser(d docstore.Document) domain.User {
	return domain.User{
		ID:                 d.ID(),
		Email:              stringField(d, "email"),
		PasswordHash:       stringField(d, "hashed_password"),
		FullName:           stringField(d, "full_name"),
		LanguagePreference: stringFieldOr(d, "language_preference", domain.DefaultLanguagePreference),
		IsActive:           boolFieldOr(d, "is_active", true),
		CreatedAt:          timeField(d, "created_at"),
		UpdatedAt:          timeField(d, "updated_at"),
	}
}
