package repository

import (
	"context"

	"github.com/recipex/backend/internal/model"
)

// FileUserRepository is the UserRepository of a FileStore
type FileUserRepository struct {
	docs *collection[model.User]
}

// Ensure FileUserRepository implements UserRepository
var _ UserRepository = (*FileUserRepository)(nil)

func (r *FileUserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	stored := *user
	stored.Recipes = nil

	err := r.docs.update(ctx, func(docs map[string]model.User) error {
		docs[user.ID] = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *FileUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	docs, err := r.docs.read(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := docs[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *FileUserRepository) DeleteByID(ctx context.Context, id string) error {
	return r.docs.update(ctx, func(docs map[string]model.User) error {
		delete(docs, id)
		return nil
	})
}
