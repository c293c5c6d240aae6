// Package repository holds the document-store adapters for recipes and
// users. Lookups by identifier return nil, nil when nothing is stored under
// the key; deletes of absent keys succeed.
package repository

import (
	"context"

	"github.com/recipex/backend/internal/model"
)

// RecipeRepository stores recipes keyed by their persisted identifier
type RecipeRepository interface {
	Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	FindByID(ctx context.Context, id string) (*model.Recipe, error)
	FindByTitle(ctx context.Context, title string) ([]model.Recipe, error)
	// FindByTags returns recipes carrying at least one of tags
	FindByTags(ctx context.Context, tags []string) ([]model.Recipe, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Recipe, error)
	DeleteByID(ctx context.Context, id string) error
}

// UserRepository stores users keyed by their persisted identifier
type UserRepository interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	DeleteByID(ctx context.Context, id string) error
}
