package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// CreateRecipes mocks the CreateRecipes method
func (m *MockRecipeService) CreateRecipes(ctx context.Context, userID uuid.UUID, recipes []types.Recipe) ([]model.Recipe, error) {
	args := m.Called(ctx, userID, recipes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, recipeID string) (*types.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// GetRecipeByName mocks the GetRecipeByName method
func (m *MockRecipeService) GetRecipeByName(ctx context.Context, title string) ([]types.Recipe, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// GetRecipeByTags mocks the GetRecipeByTags method
func (m *MockRecipeService) GetRecipeByTags(ctx context.Context, tags []string) ([]types.Recipe, error) {
	args := m.Called(ctx, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// GetUserRecipes mocks the GetUserRecipes method
func (m *MockRecipeService) GetUserRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, recipe types.Recipe) (*types.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, ids types.Ids) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUserService is a mock implementation of the user service
type MockUserService struct {
	mock.Mock
}

// CreateUser mocks the CreateUser method
func (m *MockUserService) CreateUser(ctx context.Context, username types.Username) (*types.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

// GetUser mocks the GetUser method
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

// DeleteUser mocks the DeleteUser method
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
