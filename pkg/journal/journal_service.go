package journal

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	JournalService interface {
		SaveEntry(ctx context.Context, req domain.SaveJournalRequest, userID string) (domain.JournalEntry, error)
		GetEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error)
		DeleteEntry(ctx context.Context, entryID string, userID string) error
		GetAllEntries(ctx context.Context) ([]domain.JournalEntry, error)
	}

	journalService struct {
		journalRepository JournalRepository
	}
)

func NewJournalService(journalRepository JournalRepository) JournalService {
	return &journalService{journalRepository: journalRepository}
}

func (s *journalService) SaveEntry(ctx context.Context, req domain.SaveJournalRequest, userID string) (domain.JournalEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.JournalEntry{}, domain.ErrParseUUID
	}

	recipes, _ := json.Marshal(req.Recipes)

	entry := entities.MoodEntry{
		ID:              uuid.New(),
		UserID:          userUUID,
		JournalText:     req.JournalText,
		Mood:            req.Mood,
		PrimaryColor:    req.ColorPalette.Primary,
		SecondaryColor:  req.ColorPalette.Secondary,
		TextColor:       req.ColorPalette.Text,
		AccentColor:     req.ColorPalette.Accent,
		Recipes:         string(recipes),
		SpotifyPlaylist: req.SpotifyPlaylist,
	}
	if err := s.journalRepository.CreateEntry(ctx, &entry); err != nil {
		return domain.JournalEntry{}, err
	}
	return toEntry(&entry), nil
}

func (s *journalService) GetEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepository.GetEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, toEntry(e))
	}
	return result, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	if _, err := s.journalRepository.GetEntryByID(ctx, entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrJournalEntryNotFound
		}
		return err
	}
	return s.journalRepository.DeleteEntry(ctx, entryID, userID)
}

func (s *journalService) GetAllEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepository.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, toEntry(e))
	}
	return result, nil
}

func toEntry(e *entities.MoodEntry) domain.JournalEntry {
	var recipes []domain.MoodRecipe
	_ = json.Unmarshal([]byte(e.Recipes), &recipes)

	return domain.JournalEntry{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Date:        e.CreatedAt,
		JournalText: e.JournalText,
		Mood:        e.Mood,
		ColorPalette: domain.ColorPalette{
			Primary:   e.PrimaryColor,
			Secondary: e.SecondaryColor,
			Text:      e.TextColor,
			Accent:    e.AccentColor,
		},
		Recipes:         recipes,
		SpotifyPlaylist: e.SpotifyPlaylist,
	}
}
