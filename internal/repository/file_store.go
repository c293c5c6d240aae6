package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/recipex/backend/internal/model"
)

const (
	fileStoreVersion  = "1"
	lockRetryInterval = 50 * time.Millisecond
	recipesCollection = "recipes.json"
	usersCollection   = "users.json"
)

// FileStore is a document store kept as one JSON file per collection in a
// directory. Access within a process is serialized by a mutex and across
// processes by a lock file next to each collection.
type FileStore struct {
	recipes *collection[model.Recipe]
	users   *collection[model.User]
}

// NewFileStore opens (creating if needed) a file store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{
		recipes: newCollection[model.Recipe](filepath.Join(dir, recipesCollection)),
		users:   newCollection[model.User](filepath.Join(dir, usersCollection)),
	}, nil
}

// Recipes returns the recipe repository backed by this store
func (s *FileStore) Recipes() *FileRecipeRepository {
	return &FileRecipeRepository{docs: s.recipes}
}

// Users returns the user repository backed by this store
func (s *FileStore) Users() *FileUserRepository {
	return &FileUserRepository{docs: s.users}
}

// collectionData is the on-disk layout of a collection file
type collectionData[T any] struct {
	Documents map[string]T `json:"documents"`
	Metadata  metadata     `json:"metadata"`
}

type metadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type collection[T any] struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
}

func newCollection[T any](path string) *collection[T] {
	return &collection[T]{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// read returns a snapshot of every document in the collection
func (c *collection[T]) read(ctx context.Context) (map[string]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	locked, err := c.lock.TryRLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire read lock on %s: %w", c.path, err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire read lock on %s", c.path)
	}
	defer func() { _ = c.lock.Unlock() }()

	data, err := c.load()
	if err != nil {
		return nil, err
	}
	return data.Documents, nil
}

// update applies fn to the documents and writes the result back atomically
func (c *collection[T]) update(ctx context.Context, fn func(docs map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	locked, err := c.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", c.path, err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock on %s", c.path)
	}
	defer func() { _ = c.lock.Unlock() }()

	data, err := c.load()
	if err != nil {
		return err
	}
	if err := fn(data.Documents); err != nil {
		return err
	}
	data.Metadata.Version = fileStoreVersion
	data.Metadata.UpdatedAt = time.Now().UTC()
	return c.save(data)
}

func (c *collection[T]) load() (*collectionData[T], error) {
	data := &collectionData[T]{Documents: map[string]T{}}

	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	if len(raw) == 0 {
		return data, nil
	}

	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.path, err)
	}
	if data.Documents == nil {
		data.Documents = map[string]T{}
	}
	return data, nil
}

func (c *collection[T]) save(data *collectionData[T]) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.path, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", c.path, err)
	}
	return nil
}
