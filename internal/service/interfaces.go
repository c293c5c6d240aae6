package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipes(ctx context.Context, userID uuid.UUID, recipes []types.Recipe) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (*types.Recipe, error)
	GetRecipeByName(ctx context.Context, title string) ([]types.Recipe, error)
	GetRecipeByTags(ctx context.Context, tags []string) ([]types.Recipe, error)
	GetUserRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe types.Recipe) (*types.Recipe, error)
	DeleteRecipe(ctx context.Context, ids types.Ids) error
}

// IUserService defines the interface for user operations
type IUserService interface {
	CreateUser(ctx context.Context, username types.Username) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
