package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, client: srv.Client()}
}

func TestCurrentlyPlayingNothingPlaying(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	playing, err := client.CurrentlyPlaying(context.Background(), "token")
	require.NoError(t, err)
	assert.Nil(t, playing, "204 means nothing playing, not an error")
}

func TestCurrentlyPlayingExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CurrentlyPlaying(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestCurrentlyPlayingTrack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/me/player/currently-playing", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(CurrentlyPlaying{
			Item: &Track{
				ID:      "t1",
				Name:    "Holocene",
				Artists: []Artist{{Name: "Bon Iver"}},
			},
			IsPlaying: true,
		})
	})

	playing, err := client.CurrentlyPlaying(context.Background(), "token")
	require.NoError(t, err)
	require.NotNil(t, playing)
	require.NotNil(t, playing.Item)
	assert.Equal(t, "Holocene", playing.Item.Name)
	assert.True(t, playing.IsPlaying)
}

func TestProfileExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Profile(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/me", r.URL.Path)
		json.NewEncoder(w).Encode(UserProfile{DisplayName: "melt listener"})
	})

	profile, err := client.Profile(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "melt listener", profile.DisplayName)
}

func TestLoginURL(t *testing.T) {
	raw := LoginURL("client-id", "http://localhost:8080/callback")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.spotify.com", parsed.Host)
	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "token", q.Get("response_type"))
	assert.Equal(t, "http://localhost:8080/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "user-read-currently-playing")
}
