package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/recipex/backend/internal/repository"
	"github.com/recipex/backend/internal/testhelpers"
	"github.com/recipex/backend/internal/types"
)

var (
	userID   = uuid.MustParse("f9b3b0ec-8fbb-4b91-9ff1-5b45c6b0e05a")
	recipeID = uuid.MustParse("7f2d50f9-6a41-47f1-937b-c91d3f0fd8f1")
)

type testEnv struct {
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	recipes    *RecipeService
	users      *UserService
}

func setupServices(t *testing.T) *testEnv {
	db := testhelpers.SetupSQLiteDB(t)
	log := testhelpers.Logger(t)

	env := &testEnv{
		recipeRepo: repository.NewGormRecipeRepository(db),
		userRepo:   repository.NewGormUserRepository(db),
	}
	env.recipes = NewRecipeService(env.recipeRepo, log, 4)
	env.users = NewUserService(env.userRepo, env.recipeRepo, log)
	return env
}

func userRecipe() types.Recipe {
	return types.Recipe{
		RecipeID:       recipeID,
		UserID:         userID,
		Title:          "Sample Recipe Title",
		Description:    "This is a sample recipe description.",
		Ingredients:    []string{"Ingredient 1", "Ingredient 2", "Ingredient 3"},
		Instructions:   []string{"Step 1: Do this", "Step 2: Do that"},
		Tags:           []string{"tag1", "tag2"},
		ImageURL:       "http://example.com/image.jpg",
		ImageUploadURL: "http://example.com/upload",
	}
}

// assertRecipe compares two recipes, allowing their timestamps to differ in
// location only.
func assertRecipe(t *testing.T, expected, actual types.Recipe) {
	t.Helper()
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt),
		"created_at: expected %s, got %s", expected.CreatedAt, actual.CreatedAt)
	expected.CreatedAt = time.Time{}
	actual.CreatedAt = time.Time{}
	assert.Equal(t, expected, actual)
}

func recipeIDsOf(recipes []types.Recipe) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.RecipeID)
	}
	return out
}
