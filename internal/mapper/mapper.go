// Package mapper translates between the external records exposed by the
// services and the records kept in the document store.
package mapper

import (
	"fmt"
	"time"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/types"
)

// ToPersistedRecipe copies r into its persisted form.
func ToPersistedRecipe(r types.Recipe) model.Recipe {
	return model.Recipe{
		RecipeID:       ids.ToPersisted(r.RecipeID),
		UserID:         ids.ToPersisted(r.UserID),
		Title:          r.Title,
		Description:    r.Description,
		Ingredients:    model.JSONBStringArray(r.Ingredients),
		Instructions:   model.JSONBStringArray(r.Instructions),
		Tags:           model.JSONBStringArray(r.Tags),
		ImageURL:       r.ImageURL,
		ImageUploadURL: r.ImageUploadURL,
		CreatedAt:      r.CreatedAt,
	}
}

// NewPersistedRecipe is ToPersistedRecipe for the creation path: a missing
// creation time is stamped with now.
func NewPersistedRecipe(r types.Recipe, now time.Time) model.Recipe {
	out := ToPersistedRecipe(r)
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	return out
}

// ToExternalRecipe converts a stored recipe back to its external form.
func ToExternalRecipe(r model.Recipe) (types.Recipe, error) {
	recipeID, err := ids.Parse(r.RecipeID)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("recipe id: %w", err)
	}
	userID, err := ids.Parse(r.UserID)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("recipe %s user id: %w", r.RecipeID, err)
	}

	return types.Recipe{
		RecipeID:       recipeID,
		UserID:         userID,
		Title:          r.Title,
		Description:    r.Description,
		Ingredients:    []string(r.Ingredients),
		Instructions:   []string(r.Instructions),
		Tags:           []string(r.Tags),
		ImageURL:       r.ImageURL,
		ImageUploadURL: r.ImageUploadURL,
		CreatedAt:      r.CreatedAt,
	}, nil
}

// ToExternalRecipes converts every recipe, failing on the first malformed
// record. The result is never nil.
func ToExternalRecipes(recipes []model.Recipe) ([]types.Recipe, error) {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		ext, err := ToExternalRecipe(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ext)
	}
	return out, nil
}

// ToPersistedUser copies u into its persisted form, dropping its recipes.
func ToPersistedUser(u types.User) model.User {
	return model.User{
		ID: ids.ToPersisted(u.ID),
		Username: model.Username{
			Name:    u.Username.Name,
			Surname: u.Username.Surname,
		},
	}
}

// ToExternalUser converts a stored user, including any recipes attached to
// it by the caller. A nil recipe list stays nil.
func ToExternalUser(u model.User) (types.User, error) {
	id, err := ids.Parse(u.ID)
	if err != nil {
		return types.User{}, fmt.Errorf("user id: %w", err)
	}

	out := types.User{
		ID: id,
		Username: types.Username{
			Name:    u.Username.Name,
			Surname: u.Username.Surname,
		},
	}
	if u.Recipes != nil {
		if out.Recipes, err = ToExternalRecipes(u.Recipes); err != nil {
			return types.User{}, err
		}
	}
	return out, nil
}
