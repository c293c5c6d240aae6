package types

import "github.com/google/uuid"

// Username is the structured display name of a user
type Username struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// User is the external representation of a user. Recipes is only
// populated when the user is read back.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username Username  `json:"username"`
	Recipes  []Recipe  `json:"recipes,omitempty"`
}
