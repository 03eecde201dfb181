package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetJournal    = "success get journal entries"
	MessageSuccessSaveJournal   = "journal entry saved"
	MessageSuccessDeleteJournal = "journal entry deleted"
	MessageFailedGetJournal     = "failed to get journal entries"
	MessageFailedSaveJournal    = "failed to save journal entry"
	MessageFailedDeleteJournal  = "failed to delete journal entry"

	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

type (
	SaveJournalRequest struct {
		JournalText     string       `json:"journalText" validate:"required"`
		Mood            string       `json:"mood" validate:"required"`
		ColorPalette    ColorPalette `json:"colorPalette"`
		Recipes         []MoodRecipe `json:"recipes"`
		SpotifyPlaylist string       `json:"spotifyPlaylist"`
	}

	JournalEntry struct {
		ID              string       `json:"id"`
		UserID          string       `json:"user_id"`
		Date            time.Time    `json:"date"`
		JournalText     string       `json:"journalText"`
		Mood            string       `json:"mood"`
		ColorPalette    ColorPalette `json:"colorPalette"`
		Recipes         []MoodRecipe `json:"recipes"`
		SpotifyPlaylist string       `json:"spotifyPlaylist"`
	}
)
