package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/testhelpers"
)

func newRecipe(userID string, title string, tags ...string) model.Recipe {
	return model.Recipe{
		RecipeID:     ids.ToPersisted(uuid.New()),
		UserID:       userID,
		Title:        title,
		Description:  "This is a test recipe description.",
		Ingredients:  model.JSONBStringArray{"Ingredient 1", "Ingredient 2"},
		Instructions: model.JSONBStringArray{"Step 1: Do this"},
		Tags:         model.JSONBStringArray(tags),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func recipeIDs(recipes []model.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.RecipeID)
	}
	return out
}

// testRecipeRepository runs the behaviour every RecipeRepository shares
func testRecipeRepository(t *testing.T, repo RecipeRepository) {
	ctx := context.Background()
	owner := ids.ToPersisted(uuid.New())
	other := ids.ToPersisted(uuid.New())

	first := newRecipe(owner, "Test RecipeX", "tag1", "tag2")
	second := newRecipe(owner, "Pancakes", "tag2")
	third := newRecipe(other, "Test RecipeX", "tag3")
	for _, r := range []model.Recipe{first, second, third} {
		r := r
		_, err := repo.Save(ctx, &r)
		require.NoError(t, err)
	}

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, first.RecipeID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.Title, got.Title)
		assert.Equal(t, first.Tags, got.Tags)
		assert.Equal(t, first.Ingredients, got.Ingredients)
		assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("find by unknown id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, ids.ToPersisted(uuid.New()))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("find by title", func(t *testing.T) {
		got, err := repo.FindByTitle(ctx, "Test RecipeX")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.RecipeID, third.RecipeID}, recipeIDs(got))

		got, err = repo.FindByTitle(ctx, "test recipex")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find by tags", func(t *testing.T) {
		got, err := repo.FindByTags(ctx, []string{"tag2"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.RecipeID, second.RecipeID}, recipeIDs(got))

		got, err = repo.FindByTags(ctx, []string{"tag1", "tag3"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.RecipeID, third.RecipeID}, recipeIDs(got))

		got, err = repo.FindByTags(ctx, []string{"tag"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got, err = repo.FindByTags(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("find by user id", func(t *testing.T) {
		got, err := repo.FindByUserID(ctx, owner)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.RecipeID, second.RecipeID}, recipeIDs(got))

		got, err = repo.FindByUserID(ctx, ids.ToPersisted(uuid.New()))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		updated := second
		updated.Title = "Updated Recipe Title"
		updated.Tags = nil
		_, err := repo.Save(ctx, &updated)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, second.RecipeID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Updated Recipe Title", got.Title)
		assert.Empty(t, got.Tags)
	})

	t.Run("empty and missing lists survive", func(t *testing.T) {
		bare := newRecipe(owner, "Plain water")
		bare.Ingredients = model.JSONBStringArray{}
		bare.Instructions = nil
		bare.Tags = model.JSONBStringArray{}
		_, err := repo.Save(ctx, &bare)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, bare.RecipeID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.NotNil(t, got.Ingredients)
		assert.Empty(t, got.Ingredients)
		assert.NotNil(t, got.Tags)
		assert.Empty(t, got.Tags)
		assert.Nil(t, got.Instructions)

		require.NoError(t, repo.DeleteByID(ctx, bare.RecipeID))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, third.RecipeID))

		got, err := repo.FindByID(ctx, third.RecipeID)
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, repo.DeleteByID(ctx, third.RecipeID))
	})
}

// testUserRepository runs the behaviour every UserRepository shares
func testUserRepository(t *testing.T, repo UserRepository) {
	ctx := context.Background()
	user := model.User{
		ID:       ids.ToPersisted(uuid.New()),
		Username: model.Username{Name: "name", Surname: "surname"},
	}

	_, err := repo.Save(ctx, &user)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	got, err = repo.FindByID(ctx, ids.ToPersisted(uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.DeleteByID(ctx, user.ID))
	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.DeleteByID(ctx, user.ID))
}

func TestGormRepositoriesSQLite(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)

	t.Run("recipes", func(t *testing.T) {
		testRecipeRepository(t, NewGormRecipeRepository(db))
	})
	t.Run("users", func(t *testing.T) {
		testUserRepository(t, NewGormUserRepository(db))
	})
}

func TestGormRepositoriesPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)

	t.Run("recipes", func(t *testing.T) {
		testRecipeRepository(t, NewGormRecipeRepository(db))
	})
	t.Run("users", func(t *testing.T) {
		testUserRepository(t, NewGormUserRepository(db))
	})
}

func TestFileStoreRepositories(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("recipes", func(t *testing.T) {
		testRecipeRepository(t, store.Recipes())
	})
	t.Run("users", func(t *testing.T) {
		testUserRepository(t, store.Users())
	})
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	recipe := newRecipe(ids.ToPersisted(uuid.New()), "Soup", "winter")
	_, err = store.Recipes().Save(ctx, &recipe)
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Recipes().FindByID(ctx, recipe.RecipeID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soup", got.Title)
}

func TestFileStoreHonoursCancellation(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recipe := newRecipe(ids.ToPersisted(uuid.New()), "Soup")
	_, err = store.Recipes().Save(ctx, &recipe)
	assert.ErrorIs(t, err, context.Canceled)
}
