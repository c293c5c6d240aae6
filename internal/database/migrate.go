package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/recipex/backend/internal/model"
)

// RunMigrations creates or updates the user and recipe tables
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		// Tag lookups use jsonb_exists_any
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_tags ON recipes USING GIN (tags)").Error; err != nil {
			return fmt.Errorf("failed to create tag index: %w", err)
		}
	}

	return nil
}
