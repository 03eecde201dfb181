package handlers

import (
	"Melt-App/domain"
	"Melt-App/pkg/mood"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMoodService struct {
	moodRes  domain.MoodResponse
	moodErr  error
	drinkRes domain.DrinkSuggestion
	drinkErr error
}

func (s *stubMoodService) AnalyzeMood(ctx context.Context, req domain.MoodRequest) (domain.MoodResponse, error) {
	return s.moodRes, s.moodErr
}

func (s *stubMoodService) SuggestDrink(ctx context.Context, req domain.DrinkRequest) (domain.DrinkSuggestion, error) {
	return s.drinkRes, s.drinkErr
}

func (s *stubMoodService) Status() domain.AIStatus {
	return domain.AIStatus{Ok: true, Provider: "gemini", Model: "test", HasKey: true, Time: time.Now().UTC().Format(time.RFC3339)}
}

func newAITestApp(svc mood.MoodService) *fiber.App {
	app := fiber.New()
	handler := NewAIHandler(svc, validator.New())
	app.Get("/api/ai/status", handler.GetStatus)
	app.Post("/api/ai/mood", handler.AnalyzeMood)
	app.Post("/api/ai/drink", handler.SuggestDrink)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestAnalyzeMoodHandlerEmptyText(t *testing.T) {
	app := newAITestApp(&stubMoodService{moodErr: domain.ErrJournalTextRequired})

	code, data := postJSON(t, app, "/api/ai/mood", domain.MoodRequest{JournalText: ""})
	assert.Equal(t, fiber.StatusBadRequest, code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, domain.MessageFailedMoodRequest, body["message"])
}

func TestAnalyzeMoodHandlerBarePayload(t *testing.T) {
	app := newAITestApp(&stubMoodService{moodRes: mood.FallbackMood()})

	code, data := postJSON(t, app, "/api/ai/mood", domain.MoodRequest{JournalText: "long week"})
	assert.Equal(t, fiber.StatusOK, code)

	// The payload is top-level, not wrapped in the response envelope.
	var res domain.MoodResponse
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "Comfort-seeking", res.Mood)
	assert.Len(t, res.Recipes, 3)
	assert.Equal(t, "Rainy Day Jazz", res.SpotifyPlaylist)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "data")
	assert.Contains(t, raw, "colorPalette")
}

func TestSuggestDrinkHandlerMissingFields(t *testing.T) {
	app := newAITestApp(&stubMoodService{})

	code, data := postJSON(t, app, "/api/ai/drink", domain.DrinkRequest{SongName: "Song"})
	assert.Equal(t, fiber.StatusBadRequest, code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, domain.MessageFailedDrinkInput, body["message"])
}

func TestSuggestDrinkHandlerSuccess(t *testing.T) {
	app := newAITestApp(&stubMoodService{drinkRes: mood.FallbackDrink()})

	code, data := postJSON(t, app, "/api/ai/drink", domain.DrinkRequest{
		SongName:   "Holocene",
		ArtistName: "Bon Iver",
		Mood:       "Reflective",
	})
	assert.Equal(t, fiber.StatusOK, code)

	var res domain.DrinkSuggestion
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "Honey Lemon Tea", res.DrinkName)
}

func TestGetStatusHandler(t *testing.T) {
	app := newAITestApp(&stubMoodService{})

	req := httptest.NewRequest("GET", "/api/ai/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status domain.AIStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.Ok)
	assert.Equal(t, "gemini", status.Provider)
}
