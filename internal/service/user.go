package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recipex/backend/internal/ids"
	"github.com/recipex/backend/internal/mapper"
	"github.com/recipex/backend/internal/model"
	"github.com/recipex/backend/internal/repository"
	"github.com/recipex/backend/internal/types"
)

// UserService handles users and the recipes they own
type UserService struct {
	users   repository.UserRepository
	recipes repository.RecipeRepository
	log     zerolog.Logger
}

// Ensure UserService implements IUserService
var _ IUserService = (*UserService)(nil)

// NewUserService creates a new UserService instance
func NewUserService(users repository.UserRepository, recipes repository.RecipeRepository, log zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		recipes: recipes,
		log:     log.With().Str("service", "user").Logger(),
	}
}

// CreateUser stores a new user under a generated id. The returned user has
// no recipe list.
func (s *UserService) CreateUser(ctx context.Context, username types.Username) (*types.User, error) {
	user := types.User{
		ID:       uuid.New(),
		Username: username,
	}
	log := s.log.With().Str("user_id", ids.ToPersisted(user.ID)).Logger()

	log.Info().Str("name", username.Name).Str("surname", username.Surname).Msg("creating user")

	record := mapper.ToPersistedUser(user)
	saved, err := s.users.Save(ctx, &record)
	if err != nil {
		log.Error().Err(err).Msg("error saving user")
		return nil, err
	}
	log.Info().Msg("user saved")

	created, err := mapper.ToExternalUser(*saved)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUser retrieves a user together with every recipe it owns. An unknown
// user yields nil, nil.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	key := ids.ToPersisted(userID)
	log := s.log.With().Str("user_id", key).Logger()

	record, err := s.users.FindByID(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving user")
		return nil, err
	}
	if record == nil {
		log.Info().Msg("user not found")
		return nil, nil
	}

	recipes, err := s.recipes.FindByUserID(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving user recipes")
		return nil, err
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	record.Recipes = recipes

	user, err := mapper.ToExternalUser(*record)
	if err != nil {
		return nil, err
	}
	log.Info().Int("recipes", len(user.Recipes)).Msg("user retrieved")
	return &user, nil
}

// DeleteUser removes the user and then every recipe it owns. Both steps
// always run; their failures are logged and returned together. Nothing is
// rolled back.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	key := ids.ToPersisted(userID)
	log := s.log.With().Str("user_id", key).Logger()

	log.Info().Msg("deleting user")

	var errs []error
	if err := s.users.DeleteByID(ctx, key); err != nil {
		log.Error().Err(err).Msg("error deleting user")
		errs = append(errs, fmt.Errorf("delete user %s: %w", key, err))
	} else {
		log.Info().Msg("user deleted")
	}

	if err := s.deleteOwnedRecipes(ctx, key, log); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *UserService) deleteOwnedRecipes(ctx context.Context, userKey string, log zerolog.Logger) error {
	recipes, err := s.recipes.FindByUserID(ctx, userKey)
	if err != nil {
		log.Error().Err(err).Msg("error listing recipes of deleted user")
		return fmt.Errorf("list recipes of user %s: %w", userKey, err)
	}

	var errs []error
	for _, recipe := range recipes {
		if err := s.recipes.DeleteByID(ctx, recipe.RecipeID); err != nil {
			log.Error().Err(err).Str("recipe_id", recipe.RecipeID).Msg("error deleting recipe")
			errs = append(errs, fmt.Errorf("delete recipe %s: %w", recipe.RecipeID, err))
		}
	}
	if len(errs) == 0 {
		log.Info().Int("recipes", len(recipes)).Msg("recipes associated with user deleted")
	}
	return errors.Join(errs...)
}
