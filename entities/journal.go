package entities

import (
	"github.com/google/uuid"
)

// MoodEntry is one persisted mood response: the original journal text plus
// everything the AI returned for it. Immutable once created except deletion.
type MoodEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JournalText     string    `json:"journal_text" gorm:"type:text"`
	Mood            string    `json:"mood"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	TextColor       string    `json:"text_color"`
	AccentColor     string    `json:"accent_color"`
	Recipes         string    `json:"recipes" gorm:"type:text"`
	SpotifyPlaylist string    `json:"spotify_playlist"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
