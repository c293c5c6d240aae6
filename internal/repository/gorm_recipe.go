package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/recipex/backend/internal/model"
)

// GormRecipeRepository keeps recipes in a SQL table with JSON list columns
type GormRecipeRepository struct {
	db *gorm.DB
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ RecipeRepository = (*GormRecipeRepository)(nil)

// NewGormRecipeRepository creates a new GormRecipeRepository instance
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Save inserts the recipe or overwrites the stored one with the same id
func (r *GormRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to save recipe %s: %w", recipe.RecipeID, err)
	}
	return recipe, nil
}

// FindByID retrieves a recipe by its persisted id
func (r *GormRecipeRepository) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "recipe_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// FindByTitle lists recipes whose title matches exactly
func (r *GormRecipeRepository) FindByTitle(ctx context.Context, title string) ([]model.Recipe, error) {
	return r.find(r.db.WithContext(ctx).Where("title = ?", title))
}

// FindByTags lists recipes sharing at least one tag with tags
func (r *GormRecipeRepository) FindByTags(ctx context.Context, tags []string) ([]model.Recipe, error) {
	if len(tags) == 0 {
		return []model.Recipe{}, nil
	}

	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Where("jsonb_exists_any(tags, ?)", pq.Array(tags))
	} else {
		// SQLite keeps jsonb columns as JSON text
		query = query.Where("EXISTS (SELECT 1 FROM json_each(recipes.tags) WHERE json_each.value IN ?)", tags)
	}
	return r.find(query)
}

// FindByUserID lists the recipes owned by a user
func (r *GormRecipeRepository) FindByUserID(ctx context.Context, userID string) ([]model.Recipe, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// DeleteByID removes a recipe; deleting an absent id is not an error
func (r *GormRecipeRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Recipe{}, "recipe_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}
	return nil
}

func (r *GormRecipeRepository) find(query *gorm.DB) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := query.Order("created_at, recipe_id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	return recipes, nil
}
