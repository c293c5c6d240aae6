package repository

import (
	"context"
	"sort"

	"github.com/recipex/backend/internal/model"
)

// FileRecipeRepository is the RecipeRepository of a FileStore
type FileRecipeRepository struct {
	docs *collection[model.Recipe]
}

// Ensure FileRecipeRepository implements RecipeRepository
var _ RecipeRepository = (*FileRecipeRepository)(nil)

func (r *FileRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	err := r.docs.update(ctx, func(docs map[string]model.Recipe) error {
		docs[recipe.RecipeID] = *recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *FileRecipeRepository) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	docs, err := r.docs.read(ctx)
	if err != nil {
		return nil, err
	}
	recipe, ok := docs[id]
	if !ok {
		return nil, nil
	}
	return &recipe, nil
}

func (r *FileRecipeRepository) FindByTitle(ctx context.Context, title string) ([]model.Recipe, error) {
	return r.filter(ctx, func(recipe *model.Recipe) bool {
		return recipe.Title == title
	})
}

func (r *FileRecipeRepository) FindByTags(ctx context.Context, tags []string) ([]model.Recipe, error) {
	if len(tags) == 0 {
		return []model.Recipe{}, nil
	}
	return r.filter(ctx, func(recipe *model.Recipe) bool {
		return recipe.HasAnyTag(tags)
	})
}

func (r *FileRecipeRepository) FindByUserID(ctx context.Context, userID string) ([]model.Recipe, error) {
	return r.filter(ctx, func(recipe *model.Recipe) bool {
		return recipe.UserID == userID
	})
}

func (r *FileRecipeRepository) DeleteByID(ctx context.Context, id string) error {
	return r.docs.update(ctx, func(docs map[string]model.Recipe) error {
		delete(docs, id)
		return nil
	})
}

// filter returns matching recipes ordered like the SQL repository
func (r *FileRecipeRepository) filter(ctx context.Context, match func(*model.Recipe) bool) ([]model.Recipe, error) {
	docs, err := r.docs.read(ctx)
	if err != nil {
		return nil, err
	}

	out := []model.Recipe{}
	for _, recipe := range docs {
		if match(&recipe) {
			out = append(out, recipe)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].RecipeID < out[j].RecipeID
	})
	return out, nil
}
