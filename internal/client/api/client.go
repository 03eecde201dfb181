package api

import (
	"Melt-App/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the MELT backend. The AI endpoints return their payload
// bare; everything else is wrapped in the standard response envelope.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.client.Do(req)
}

// doBare decodes a bare JSON payload, the AI route contract.
func (c *Client) doBare(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			return fmt.Errorf("%s", env.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doEnveloped decodes the standard envelope and unwraps data into out.
func (c *Client) doEnveloped(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if !env.Status {
		if env.Error != "" {
			return fmt.Errorf("%s: %s", env.Message, env.Error)
		}
		return fmt.Errorf("%s", env.Message)
	}
	if out == nil || env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) Health(ctx context.Context) error {
	var res struct {
		Ok bool `json:"ok"`
	}
	return c.doBare(ctx, http.MethodGet, "/api/health", nil, &res)
}

func (c *Client) AIStatus(ctx context.Context) (domain.AIStatus, error) {
	var status domain.AIStatus
	err := c.doBare(ctx, http.MethodGet, "/api/ai/status", nil, &status)
	return status, err
}

func (c *Client) AnalyzeMood(ctx context.Context, journalText string) (domain.MoodResponse, error) {
	var res domain.MoodResponse
	err := c.doBare(ctx, http.MethodPost, "/api/ai/mood", domain.MoodRequest{JournalText: journalText}, &res)
	return res, err
}

func (c *Client) SuggestDrink(ctx context.Context, songName, artistName, mood string) (domain.DrinkSuggestion, error) {
	var res domain.DrinkSuggestion
	req := domain.DrinkRequest{SongName: songName, ArtistName: artistName, Mood: mood}
	err := c.doBare(ctx, http.MethodPost, "/api/ai/drink", req, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, username, email, password string) (domain.AuthResponse, error) {
	var res domain.AuthResponse
	req := domain.RegisterRequest{Username: username, Email: email, Password: password}
	err := c.doEnveloped(ctx, http.MethodPost, "/api/users/register", req, &res)
	return res, err
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.AuthResponse, error) {
	var res domain.AuthResponse
	req := domain.LoginRequest{Username: username, Password: password}
	err := c.doEnveloped(ctx, http.MethodPost, "/api/users/login", req, &res)
	return res, err
}

func (c *Client) Me(ctx context.Context) (domain.UserProfile, error) {
	var res domain.UserProfile
	err := c.doEnveloped(ctx, http.MethodGet, "/api/users/me", nil, &res)
	return res, err
}

func (c *Client) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	var res []domain.Collection
	err := c.doEnveloped(ctx, http.MethodGet, "/api/collections", nil, &res)
	return res, err
}

func (c *Client) CreateCollection(ctx context.Context, name string) (domain.Collection, error) {
	var res domain.Collection
	req := domain.CreateCollectionRequest{Name: name}
	err := c.doEnveloped(ctx, http.MethodPost, "/api/collections", req, &res)
	return res, err
}

func (c *Client) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.Collection, error) {
	var res domain.Collection
	err := c.doEnveloped(ctx, http.MethodPost, "/api/collections/save", req, &res)
	return res, err
}

func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.doEnveloped(ctx, http.MethodDelete, "/api/collections/"+id, nil, nil)
}

func (c *Client) GetJournal(ctx context.Context) ([]domain.JournalEntry, error) {
	var res []domain.JournalEntry
	err := c.doEnveloped(ctx, http.MethodGet, "/api/journal", nil, &res)
	return res, err
}

func (c *Client) SaveJournal(ctx context.Context, req domain.SaveJournalRequest) (domain.JournalEntry, error) {
	var res domain.JournalEntry
	err := c.doEnveloped(ctx, http.MethodPost, "/api/journal", req, &res)
	return res, err
}

func (c *Client) DeleteJournal(ctx context.Context, id string) error {
	return c.doEnveloped(ctx, http.MethodDelete, "/api/journal/"+id, nil, nil)
}

func (c *Client) GetPublicRecipes(ctx context.Context) ([]domain.PublicRecipe, error) {
	var res []domain.PublicRecipe
	err := c.doEnveloped(ctx, http.MethodGet, "/api/community/recipes", nil, &res)
	return res, err
}

func (c *Client) ShareRecipe(ctx context.Context, req domain.ShareRecipeRequest) (domain.PublicRecipe, error) {
	var res domain.PublicRecipe
	err := c.doEnveloped(ctx, http.MethodPost, "/api/community/recipes", req, &res)
	return res, err
}

func (c *Client) AdminUsers(ctx context.Context) ([]domain.UserProfile, error) {
	var res []domain.UserProfile
	err := c.doEnveloped(ctx, http.MethodGet, "/api/admin/users", nil, &res)
	return res, err
}

func (c *Client) AdminCollections(ctx context.Context) ([]domain.Collection, error) {
	var res []domain.Collection
	err := c.doEnveloped(ctx, http.MethodGet, "/api/admin/collections", nil, &res)
	return res, err
}

func (c *Client) AdminHistory(ctx context.Context) ([]domain.JournalEntry, error) {
	var res []domain.JournalEntry
	err := c.doEnveloped(ctx, http.MethodGet, "/api/admin/history", nil, &res)
	return res, err
}
