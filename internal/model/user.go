package model

// Username is the persisted form of a user's display name
type Username struct {
	Name    string `gorm:"size:100" json:"name"`
	Surname string `gorm:"size:100" json:"surname"`
}

// User is the persisted form of a user. Recipes is filled in on reads and
// never written to the user record.
type User struct {
	ID       string   `gorm:"primaryKey;size:36" json:"id"`
	Username Username `gorm:"embedded;embeddedPrefix:username_" json:"username"`
	Recipes  []Recipe `gorm:"-" json:"recipes,omitempty"`
}

func (User) TableName() string {
	return "users"
}
