package entities

import (
	"github.com/google/uuid"
)

// Recipe is a community-shared recipe. AI-generated recipes are never stored
// here; they only become rows when a user saves them into a collection.
type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description" gorm:"type:text"`
	Ingredients   string    `json:"ingredients" gorm:"type:text"`
	FlavorProfile string    `json:"flavor_profile" gorm:"type:text"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsPublic      bool      `json:"is_public" gorm:"default:true"`

	Author *User `gorm:"foreignKey:AuthorID"`
	Timestamp
}
