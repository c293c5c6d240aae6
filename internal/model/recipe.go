package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface. A nil array is stored as
// NULL and an empty one as [], so both survive a round trip.
func (a JSONBStringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	data, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string array", value)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode string array: %w", err)
	}
	*a = out
	return nil
}

// Recipe is the persisted form of a recipe. Identifiers are stored in
// their canonical uppercase string form.
type Recipe struct {
	RecipeID       string           `gorm:"primaryKey;size:36" json:"recipe_id"`
	UserID         string           `gorm:"size:36;not null;index" json:"user_id"`
	Title          string           `gorm:"size:255;index" json:"title"`
	Description    string           `gorm:"type:text" json:"description"`
	Ingredients    JSONBStringArray `gorm:"type:jsonb" json:"ingredients"`
	Instructions   JSONBStringArray `gorm:"type:jsonb" json:"instructions"`
	Tags           JSONBStringArray `gorm:"type:jsonb" json:"tags"`
	ImageURL       string           `gorm:"size:255" json:"image_url"`
	ImageUploadURL string           `gorm:"size:1024" json:"image_upload_url"`
	CreatedAt      time.Time        `gorm:"autoCreateTime:false" json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// HasAnyTag reports whether the recipe carries at least one of tags
func (r *Recipe) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range r.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
