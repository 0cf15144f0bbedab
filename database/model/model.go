// Package model defines the persisted entities of the catalog.
package model

// Character is one entry of the Dragon Ball catalog. The Id comes from the
// upstream API and is never reassigned; identity is the Id alone.
type Character struct {
	Id          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Ki          string `json:"ki"`
	MaxKi       string `json:"maxKi"`
	Race        string `json:"race"`
	Gender      string `json:"gender"`
	Description string `json:"description" gorm:"size:1000"`
	Image       string `json:"image"`
	Affiliation string `json:"affiliation"`
	// DeletedAt is passed through from the upstream payload. No query uses
	// it; characters are never deleted here.
	DeletedAt *string `json:"deletedAt"`

	// Transformations only shows up if the upstream payload carries it;
	// it is not persisted.
	Transformations []string `json:"transformations,omitempty" gorm:"-"`
}

func (Character) TableName() string {
	return "characters"
}

// User is a registered account. Username uniqueness is checked at the
// service layer, not enforced by the schema.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never plaintext

	Favorites []Character `json:"favorites" gorm:"many2many:user_favorites"`
}

func (User) TableName() string {
	return "users"
}

// Setting is a key/value row for persisted application state, such as the
// catalog seeded marker.
type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}
