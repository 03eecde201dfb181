package domain

import (
	"errors"
)

var (
	MessageSuccessGetMood    = "success get mood response"
	MessageSuccessGetDrink   = "success get drink suggestion"
	MessageFailedMoodRequest = "journalText is required"
	MessageFailedDrinkInput  = "songName, artistName, mood required"

	ErrJournalTextRequired = errors.New("journal text is required")
	ErrDrinkInputRequired  = errors.New("song name, artist name and mood are required")
	ErrGeminiAPIFailed     = errors.New("gemini API processing failed")
	ErrNoJSONPayload       = errors.New("no JSON object found in model reply")
)

type (
	// MoodRequest and DrinkRequest keep the camelCase wire format the web
	// client has always used.
	MoodRequest struct {
		JournalText string `json:"journalText"`
	}

	DrinkRequest struct {
		SongName   string `json:"songName" validate:"required"`
		ArtistName string `json:"artistName" validate:"required"`
		Mood       string `json:"mood" validate:"required"`
	}

	ColorPalette struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Text      string `json:"text"`
		Accent    string `json:"accent"`
	}

	MoodRecipe struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Ingredients   []string `json:"ingredients"`
		FlavorProfile []string `json:"flavorProfile,omitempty"`
	}

	MoodResponse struct {
		Mood            string       `json:"mood"`
		ColorPalette    ColorPalette `json:"colorPalette"`
		Recipes         []MoodRecipe `json:"recipes"`
		SpotifyPlaylist string       `json:"spotifyPlaylist"`
	}

	DrinkSuggestion struct {
		DrinkName        string `json:"drinkName"`
		DrinkDescription string `json:"drinkDescription"`
	}

	AIStatus struct {
		Ok       bool   `json:"ok"`
		Provider string `json:"provider"`
		Model    string `json:"model"`
		HasKey   bool   `json:"hasKey"`
		Time     string `json:"time"`
	}
)
