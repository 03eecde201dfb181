package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrSessionExpired = errors.New("spotify session expired")

const defaultBaseURL = "https://api.spotify.com"

type (
	Client struct {
		baseURL string
		client  *http.Client
	}

	Image struct {
		URL string `json:"url"`
	}

	UserProfile struct {
		DisplayName string  `json:"display_name"`
		Images      []Image `json:"images"`
	}

	Artist struct {
		Name string `json:"name"`
	}

	Album struct {
		Name   string  `json:"name"`
		Images []Image `json:"images"`
	}

	Track struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Artists []Artist `json:"artists"`
		Album   Album    `json:"album"`
	}

	// CurrentlyPlaying mirrors the player endpoint payload. Item is nil when
	// nothing is loaded in the player.
	CurrentlyPlaying struct {
		Item      *Track `json:"item"`
		IsPlaying bool   `json:"is_playing"`
	}
)

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LoginURL builds the implicit-grant authorize URL. The user opens it in a
// browser and pastes the access token from the redirect fragment back into
// the client.
func LoginURL(clientID, redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("response_type", "token")
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", "user-read-currently-playing user-read-playback-state")
	return "https://accounts.spotify.com/authorize?" + q.Encode()
}

func (c *Client) get(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.client.Do(req)
}

func (c *Client) Profile(ctx context.Context, token string) (*UserProfile, error) {
	resp, err := c.get(ctx, "/v1/me", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify profile request failed with status %d", resp.StatusCode)
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CurrentlyPlaying returns (nil, nil) when nothing is playing: the player
// endpoint answers 204 with no body in that case.
func (c *Client) CurrentlyPlaying(ctx context.Context, token string) (*CurrentlyPlaying, error) {
	resp, err := c.get(ctx, "/v1/me/player/currently-playing", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil, nil
	case http.StatusUnauthorized:
		return nil, ErrSessionExpired
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("spotify player request failed with status %d", resp.StatusCode)
	}

	var playing CurrentlyPlaying
	if err := json.NewDecoder(resp.Body).Decode(&playing); err != nil {
		return nil, err
	}
	return &playing, nil
}
