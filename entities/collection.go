package entities

import (
	"github.com/google/uuid"
	"time"
)

type Collection struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User    *User              `gorm:"foreignKey:UserID"`
	Recipes []CollectionRecipe `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"recipes"`
	Timestamp
}

// CollectionRecipe is a full snapshot of the saved recipe, not a reference.
// AI-generated recipes are ephemeral, so the collection keeps its own copy.
type CollectionRecipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CollectionID  uuid.UUID `json:"collection_id"`
	RecipeID      string    `json:"recipe_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description" gorm:"type:text"`
	Ingredients   string    `json:"ingredients" gorm:"type:text"`
	FlavorProfile string    `json:"flavor_profile" gorm:"type:text"`
	SavedAt       time.Time `gorm:"type:timestamp" json:"saved_at"`
}
