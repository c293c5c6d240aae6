package types

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the external representation of a recipe
type Recipe struct {
	RecipeID       uuid.UUID `json:"recipe_id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title,omitempty"`
	Description    string    `json:"description,omitempty"`
	Ingredients    []string  `json:"ingredients,omitempty"`
	Instructions   []string  `json:"instructions,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	ImageUploadURL string    `json:"image_upload_url,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Ids pairs a recipe with the user asking to delete it
type Ids struct {
	RecipeID string `json:"recipe_id"`
	UserID   string `json:"user_id"`
}
