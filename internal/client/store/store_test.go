package store

import (
	"Melt-App/domain"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "melt.json")
	ls := NewLocalStore(path)
	require.NoError(t, ls.Load())
	return ls, path
}

func TestLoadMissingFile(t *testing.T) {
	ls, _ := newTestStore(t)
	assert.Nil(t, ls.Session())
	assert.Empty(t, ls.SpotifyToken())
	assert.Empty(t, ls.Collections("any"))
}

func TestSessionRoundTrip(t *testing.T) {
	ls, path := newTestStore(t)

	session := &Session{Token: "jwt-token", User: domain.UserProfile{ID: "u1", Username: "alice"}}
	require.NoError(t, ls.SetSession(session))

	reloaded := NewLocalStore(path)
	require.NoError(t, reloaded.Load())
	got := reloaded.Session()
	require.NotNil(t, got)
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, "alice", got.User.Username)

	require.NoError(t, reloaded.ClearSession())
	assert.Nil(t, reloaded.Session())
}

func TestReplaceCollectionsKeepsOtherOwners(t *testing.T) {
	ls, _ := newTestStore(t)

	require.NoError(t, ls.ReplaceCollections("u1", []domain.Collection{
		{ID: "c1", UserID: "u1", Name: "Favorites"},
	}))
	require.NoError(t, ls.ReplaceCollections("u2", []domain.Collection{
		{ID: "c2", UserID: "u2", Name: "Comfort Food"},
	}))

	// Rewriting u1's collections must leave u2's untouched.
	require.NoError(t, ls.ReplaceCollections("u1", []domain.Collection{
		{ID: "c3", UserID: "u1", Name: "New Favorites"},
	}))

	u1 := ls.Collections("u1")
	require.Len(t, u1, 1)
	assert.Equal(t, "New Favorites", u1[0].Name)

	u2 := ls.Collections("u2")
	require.Len(t, u2, 1)
	assert.Equal(t, "Comfort Food", u2[0].Name)
}

func TestHistoryScopedByOwner(t *testing.T) {
	ls, _ := newTestStore(t)

	require.NoError(t, ls.ReplaceHistory("u1", []domain.JournalEntry{
		{ID: "e1", UserID: "u1", Mood: "Calm"},
		{ID: "e2", UserID: "u1", Mood: "Hopeful"},
	}))
	require.NoError(t, ls.ReplaceHistory("u2", []domain.JournalEntry{
		{ID: "e3", UserID: "u2", Mood: "Tired"},
	}))

	assert.Len(t, ls.History("u1"), 2)
	assert.Len(t, ls.History("u2"), 1)
	assert.Empty(t, ls.History("u3"))
}

func TestSpotifyTokenPersists(t *testing.T) {
	ls, path := newTestStore(t)

	require.NoError(t, ls.SetSpotifyToken("spotify-token"))

	reloaded := NewLocalStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "spotify-token", reloaded.SpotifyToken())

	require.NoError(t, reloaded.ClearSpotifyToken())
	assert.Empty(t, reloaded.SpotifyToken())
}
