package journal

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJournalRepository struct {
	entries map[string]*entities.MoodEntry
}

func newFakeJournalRepository() *fakeJournalRepository {
	return &fakeJournalRepository{entries: make(map[string]*entities.MoodEntry)}
}

func (r *fakeJournalRepository) CreateEntry(ctx context.Context, entry *entities.MoodEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeJournalRepository) GetEntriesByUser(ctx context.Context, userID string) ([]*entities.MoodEntry, error) {
	var result []*entities.MoodEntry
	for _, e := range r.entries {
		if e.UserID.String() == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeJournalRepository) GetEntryByID(ctx context.Context, id string, userID string) (*entities.MoodEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID.String() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeJournalRepository) DeleteEntry(ctx context.Context, id string, userID string) error {
	e, ok := r.entries[id]
	if ok && e.UserID.String() == userID {
		delete(r.entries, id)
	}
	return nil
}

func (r *fakeJournalRepository) GetAllEntries(ctx context.Context) ([]*entities.MoodEntry, error) {
	var result []*entities.MoodEntry
	for _, e := range r.entries {
		result = append(result, e)
	}
	return result, nil
}

func saveJournalReq() domain.SaveJournalRequest {
	return domain.SaveJournalRequest{
		JournalText: "long day, warm soup helped",
		Mood:        "Comfort-seeking",
		ColorPalette: domain.ColorPalette{
			Primary:   "#F5E6CC",
			Secondary: "#D9C3A9",
			Text:      "#333333",
			Accent:    "#C77D4A",
		},
		Recipes: []domain.MoodRecipe{
			{ID: "r1", Title: "Tomato Soup", Ingredients: []string{"Tomatoes", "Garlic"}},
		},
		SpotifyPlaylist: "Rainy Day Jazz",
	}
}

func TestSaveEntryRoundTrip(t *testing.T) {
	repo := newFakeJournalRepository()
	svc := NewJournalService(repo)
	userID := uuid.New().String()
	ctx := context.Background()

	entry, err := svc.SaveEntry(ctx, saveJournalReq(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "Comfort-seeking", entry.Mood)
	assert.Equal(t, "#F5E6CC", entry.ColorPalette.Primary)
	require.Len(t, entry.Recipes, 1)
	assert.Equal(t, "Tomato Soup", entry.Recipes[0].Title)

	entries, err := svc.GetEntries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, []string{"Tomatoes", "Garlic"}, entries[0].Recipes[0].Ingredients)
}

func TestSaveEntryBadUserID(t *testing.T) {
	svc := NewJournalService(newFakeJournalRepository())

	_, err := svc.SaveEntry(context.Background(), saveJournalReq(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetEntriesScopedByOwner(t *testing.T) {
	repo := newFakeJournalRepository()
	svc := NewJournalService(repo)
	alice := uuid.New().String()
	bob := uuid.New().String()
	ctx := context.Background()

	_, err := svc.SaveEntry(ctx, saveJournalReq(), alice)
	require.NoError(t, err)
	_, err = svc.SaveEntry(ctx, saveJournalReq(), bob)
	require.NoError(t, err)

	aliceEntries, err := svc.GetEntries(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceEntries, 1)
	assert.Equal(t, alice, aliceEntries[0].UserID)
}

func TestDeleteEntryScopedToOwner(t *testing.T) {
	repo := newFakeJournalRepository()
	svc := NewJournalService(repo)
	owner := uuid.New().String()
	other := uuid.New().String()
	ctx := context.Background()

	entry, err := svc.SaveEntry(ctx, saveJournalReq(), owner)
	require.NoError(t, err)

	err = svc.DeleteEntry(ctx, entry.ID, other)
	assert.ErrorIs(t, err, domain.ErrJournalEntryNotFound)
	assert.Len(t, repo.entries, 1)

	require.NoError(t, svc.DeleteEntry(ctx, entry.ID, owner))
	assert.Empty(t, repo.entries)
}
