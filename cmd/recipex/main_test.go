package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/service"
	"github.com/recipex/backend/internal/types"
)

func setupCLIEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("FILE_STORE_PATH", t.TempDir())
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_URL", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c := &cli{}
	t.Cleanup(func() { _ = c.close() })

	cmd := newRootCmd(c)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	require.NoError(t, c.close())
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestUserAndRecipeCommands(t *testing.T) {
	setupCLIEnv(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "All migrations applied successfully.")

	out, err = run(t, "user", "create", "--name", "Ada", "--surname", "Lovelace")
	require.NoError(t, err)
	user := decode[types.User](t, out)
	assert.Equal(t, "Ada", user.Username.Name)

	out, err = run(t, "recipe", "create",
		"--user", user.ID.String(),
		"--title", "Seed cake",
		"--ingredient", "flour", "--ingredient", "caraway",
		"--step", "Mix, then bake",
		"--tag", "baking")
	require.NoError(t, err)
	recipe := decode[model.Recipe](t, out)
	assert.Equal(t, []string{"Mix, then bake"}, []string(recipe.Instructions))

	out, err = run(t, "recipe", "tags", "baking", "frying")
	require.NoError(t, err)
	assert.Len(t, decode[[]types.Recipe](t, out), 1)

	out, err = run(t, "recipe", "search", "Seed cake")
	require.NoError(t, err)
	assert.Len(t, decode[[]types.Recipe](t, out), 1)

	out, err = run(t, "recipe", "get", recipe.RecipeID)
	require.NoError(t, err)
	assert.Equal(t, "Seed cake", decode[types.Recipe](t, out).Title)

	out, err = run(t, "recipe", "update", recipe.RecipeID,
		"--title", "Caraway seed cake",
		"--image-upload-url", "http://images.local/upload/1")
	require.NoError(t, err)
	updated := decode[types.Recipe](t, out)
	assert.Equal(t, "Caraway seed cake", updated.Title)
	assert.Equal(t, "http://images.local/upload/1", updated.ImageUploadURL)
	assert.Equal(t, []string{"flour", "caraway"}, updated.Ingredients)
	assert.Equal(t, user.ID, updated.UserID)

	out, err = run(t, "recipe", "search", "Seed cake")
	require.NoError(t, err)
	assert.Empty(t, decode[[]types.Recipe](t, out))

	out, err = run(t, "user", "get", user.ID.String())
	require.NoError(t, err)
	assert.Len(t, decode[types.User](t, out).Recipes, 1)

	_, err = run(t, "recipe", "delete", recipe.RecipeID, "--user", "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, service.ErrNotOwner)

	_, err = run(t, "user", "delete", user.ID.String())
	require.NoError(t, err)

	_, err = run(t, "user", "get", user.ID.String())
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, "recipe", "get", recipe.RecipeID)
	assert.ErrorContains(t, err, "not found")
}

func TestSeedCommand(t *testing.T) {
	setupCLIEnv(t)

	out, err := run(t, "seed", "--name", "Grace")
	require.NoError(t, err)

	user := decode[types.User](t, out)
	assert.Equal(t, "Grace", user.Username.Name)
	assert.Equal(t, "User", user.Username.Surname)
	assert.Len(t, user.Recipes, len(sampleRecipes))

	out, err = run(t, "recipe", "tags", "quick")
	require.NoError(t, err)
	assert.Len(t, decode[[]types.Recipe](t, out), 2)
}

func TestCommandsRejectMalformedIDs(t *testing.T) {
	setupCLIEnv(t)

	_, err := run(t, "user", "get", "not-a-user")
	assert.Error(t, err)

	_, err = run(t, "recipe", "delete", "not-a-recipe", "--user", "also-not-a-user")
	assert.Error(t, err)
}
