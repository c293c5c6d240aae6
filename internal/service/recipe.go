package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/mapper"
	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/repository"
	"github.com/recipex/backend/internal/types"
)

var (
	ErrNotOwner     = errors.New("recipe is owned by another user")
	ErrMissingOwner = errors.New("recipe owner is required")
)

// DefaultBatchConcurrency bounds the parallel saves of CreateRecipes
const DefaultBatchConcurrency = 8

// now is the creation clock. Stored timestamps keep microsecond precision.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// RecipeService handles recipe operations
type RecipeService struct {
	recipes          repository.RecipeRepository
	log              zerolog.Logger
	batchConcurrency int
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance. A non-positive
// batchConcurrency selects DefaultBatchConcurrency.
func NewRecipeService(recipes repository.RecipeRepository, log zerolog.Logger, batchConcurrency int) *RecipeService {
	if batchConcurrency < 1 {
		batchConcurrency = DefaultBatchConcurrency
	}
	return &RecipeService{
		recipes:          recipes,
		log:              log.With().Str("service", "recipe").Logger(),
		batchConcurrency: batchConcurrency,
	}
}

// CreateRecipes stores recipes on behalf of userID. A recipe keeps its own
// owner when it has one and is owned by userID otherwise. Recipes without an
// id get a new one. Saves run concurrently; the first failure cancels the
// saves still in flight and fails the whole batch. Results follow input order.
func (s *RecipeService) CreateRecipes(ctx context.Context, userID uuid.UUID, recipes []types.Recipe) ([]model.Recipe, error) {
	log := s.log.With().Str("user_id", ids.ToPersisted(userID)).Int("count", len(recipes)).Logger()

	if userID == uuid.Nil {
		for _, recipe := range recipes {
			if recipe.UserID == uuid.Nil {
				return nil, ErrMissingOwner
			}
		}
	}

	log.Info().Msg("creating recipes")

	createdAt := now()
	saved := make([]model.Recipe, len(recipes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, recipe := range recipes {
		i, recipe := i, recipe
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if recipe.UserID == uuid.Nil {
				recipe.UserID = userID
			}
			if recipe.RecipeID == uuid.Nil {
				recipe.RecipeID = uuid.New()
			}
			record := mapper.NewPersistedRecipe(recipe, createdAt)

			out, err := s.recipes.Save(gctx, &record)
			if err != nil {
				return fmt.Errorf("failed to create recipe %s: %w", record.RecipeID, err)
			}
			saved[i] = *out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("error creating recipes")
		return nil, err
	}

	log.Info().Msg("recipes created")
	return saved, nil
}

// GetRecipe retrieves a recipe by id. An unknown id yields nil, nil.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID string) (*types.Recipe, error) {
	key, err := ids.Normalize(recipeID)
	if err != nil {
		return nil, err
	}
	log := s.log.With().Str("recipe_id", key).Logger()

	record, err := s.recipes.FindByID(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving recipe")
		return nil, err
	}
	if record == nil {
		log.Debug().Msg("recipe not found")
		return nil, nil
	}

	recipe, err := mapper.ToExternalRecipe(*record)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeByName lists recipes whose title matches exactly
func (s *RecipeService) GetRecipeByName(ctx context.Context, title string) ([]types.Recipe, error) {
	records, err := s.recipes.FindByTitle(ctx, title)
	if err != nil {
		s.log.Error().Err(err).Str("title", title).Msg("error searching recipes by title")
		return nil, err
	}
	return mapper.ToExternalRecipes(records)
}

// GetRecipeByTags lists recipes sharing at least one tag with tags. No tags
// or no match yields an empty list.
func (s *RecipeService) GetRecipeByTags(ctx context.Context, tags []string) ([]types.Recipe, error) {
	if len(tags) == 0 {
		return []types.Recipe{}, nil
	}

	records, err := s.recipes.FindByTags(ctx, tags)
	if err != nil {
		s.log.Error().Err(err).Strs("tags", tags).Msg("error searching recipes by tags")
		return nil, err
	}
	return mapper.ToExternalRecipes(records)
}

// GetUserRecipes lists the recipes owned by a user
func (s *RecipeService) GetUserRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error) {
	records, err := s.recipes.FindByUserID(ctx, ids.ToPersisted(userID))
	if err != nil {
		s.log.Error().Err(err).Str("user_id", ids.ToPersisted(userID)).Msg("error listing user recipes")
		return nil, err
	}
	return mapper.ToExternalRecipes(records)
}

// UpdateRecipe replaces the stored recipe with the same id and returns the
// updated recipe. The creation time of the stored recipe is kept, as is its
// owner when recipe carries none. Unknown recipes yield nil, nil and nothing
// is written.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe types.Recipe) (*types.Recipe, error) {
	key := ids.ToPersisted(recipe.RecipeID)
	log := s.log.With().Str("recipe_id", key).Logger()

	existing, err := s.recipes.FindByID(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving recipe for update")
		return nil, err
	}
	if existing == nil {
		log.Warn().Msg("recipe to update not found")
		return nil, nil
	}

	record := mapper.ToPersistedRecipe(recipe)
	record.CreatedAt = existing.CreatedAt
	if recipe.UserID == uuid.Nil {
		record.UserID = existing.UserID
	}

	saved, err := s.recipes.Save(ctx, &record)
	if err != nil {
		log.Error().Err(err).Msg("error updating recipe")
		return nil, err
	}

	updated, err := mapper.ToExternalRecipe(*saved)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("recipe updated")
	return &updated, nil
}

// DeleteRecipe removes the recipe named by req.RecipeID. Deleting an unknown
// recipe succeeds; deleting a recipe owned by someone other than req.UserID
// fails with ErrNotOwner.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req types.Ids) error {
	recipeKey, err := ids.Normalize(req.RecipeID)
	if err != nil {
		return err
	}
	userKey, err := ids.Normalize(req.UserID)
	if err != nil {
		return err
	}
	log := s.log.With().Str("recipe_id", recipeKey).Str("user_id", userKey).Logger()

	existing, err := s.recipes.FindByID(ctx, recipeKey)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving recipe for delete")
		return err
	}
	if existing == nil {
		log.Debug().Msg("recipe to delete not found")
		return nil
	}
	if existing.UserID != userKey {
		log.Warn().Str("owner_id", existing.UserID).Msg("refusing to delete recipe of another user")
		return fmt.Errorf("delete recipe %s: %w", recipeKey, ErrNotOwner)
	}

	if err := s.recipes.DeleteByID(ctx, recipeKey); err != nil {
		log.Error().Err(err).Msg("error deleting recipe")
		return err
	}

	log.Info().Msg("recipe deleted")
	return nil
}
