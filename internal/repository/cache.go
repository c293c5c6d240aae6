package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/recipex/backend/internal/model"
)

// CachedRecipeRepository is a read-through redis cache in front of another
// RecipeRepository. Only lookups by id are cached. Writes evict the cached
// entry before and after reaching the store. The cache never fails a call:
// redis errors are logged and the store stays authoritative.
//
// A lookup that misses while a write is in flight may cache the row it read
// before the write. Such an entry, like one left by a failed eviction, is
// served for at most the TTL.
type CachedRecipeRepository struct {
	RecipeRepository
	redis *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// DefaultCacheTTL replaces a non-positive TTL so every cached entry expires
const DefaultCacheTTL = 10 * time.Minute

// NewCachedRecipeRepository wraps next with a redis cache of the given TTL
func NewCachedRecipeRepository(next RecipeRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedRecipeRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedRecipeRepository{
		RecipeRepository: next,
		redis:            client,
		ttl:              ttl,
		log:              log.With().Str("component", "recipe_cache").Logger(),
	}
}

func recipeCacheKey(id string) string {
	return fmt.Sprintf("recipe:%s", id)
}

// FindByID serves from redis when possible. A cache failure falls back to
// the underlying store.
func (r *CachedRecipeRepository) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	key := recipeCacheKey(id)

	data, err := r.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var recipe model.Recipe
		if err := json.Unmarshal(data, &recipe); err == nil {
			return &recipe, nil
		}
		r.log.Warn().Str("recipe_id", id).Msg("discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.log.Warn().Err(err).Str("recipe_id", id).Msg("recipe cache read failed")
	}

	recipe, err := r.RecipeRepository.FindByID(ctx, id)
	if err != nil || recipe == nil {
		return recipe, err
	}

	if data, err := json.Marshal(recipe); err == nil {
		if err := r.redis.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.log.Warn().Err(err).Str("recipe_id", id).Msg("recipe cache write failed")
		}
	}
	return recipe, nil
}

func (r *CachedRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	r.evict(ctx, recipe.RecipeID)
	saved, err := r.RecipeRepository.Save(ctx, recipe)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, recipe.RecipeID)
	return saved, nil
}

func (r *CachedRecipeRepository) DeleteByID(ctx context.Context, id string) error {
	r.evict(ctx, id)
	if err := r.RecipeRepository.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

// evict drops the cached entry. Failures are only logged; the entry then
// expires with its TTL.
func (r *CachedRecipeRepository) evict(ctx context.Context, id string) {
	if err := r.redis.Del(ctx, recipeCacheKey(id)).Err(); err != nil {
		r.log.Warn().Err(err).Str("recipe_id", id).Msg("failed to evict cached recipe")
	}
}
