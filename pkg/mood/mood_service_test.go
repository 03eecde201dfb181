package mood

import (
	"Melt-App/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) []byte {
	body := map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": text},
					},
				},
			},
		},
	}
	b, _ := json.Marshal(body)
	return b
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*moodService, *httptest.Server) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &moodService{baseURL: srv.URL, client: srv.Client()}, srv
}

func TestAnalyzeMoodEmptyInput(t *testing.T) {
	var calls int64
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	})

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := svc.AnalyzeMood(context.Background(), domain.MoodRequest{JournalText: input})
		assert.ErrorIs(t, err, domain.ErrJournalTextRequired)
	}
	assert.Zero(t, atomic.LoadInt64(&calls), "provider must not be called for empty input")
}

func TestAnalyzeMoodFallbackOnProviderError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res, err := svc.AnalyzeMood(context.Background(), domain.MoodRequest{JournalText: "rough day"})
	require.NoError(t, err, "provider failure is recoverable")
	assert.Equal(t, FallbackMood(), res)
}

func TestAnalyzeMoodFallbackOnNonJSONReply(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply("I cannot answer that in JSON, sorry."))
	})

	res, err := svc.AnalyzeMood(context.Background(), domain.MoodRequest{JournalText: "rough day"})
	require.NoError(t, err)
	assert.Equal(t, FallbackMood(), res)
}

func TestAnalyzeMoodSuccess(t *testing.T) {
	reply := "Here is your analysis:\n```json\n" + `{
		"mood": "Hopeful",
		"colorPalette": {"primary": "#AACCEE", "secondary": "#DDEEFF", "text": "#222222", "accent": "#FF8866"},
		"recipes": [
			{"title": "Lemon Pasta", "description": "Bright and light.", "ingredients": ["Pasta", "Lemon"], "flavorProfile": ["Citrus"]},
			{"title": "Berry Salad", "description": "Fresh start.", "ingredients": ["Berries", "Mint"], "flavorProfile": ["Sweet"]},
			{"title": "Green Tea", "description": "Calm focus.", "ingredients": ["Tea"], "flavorProfile": ["Earthy"]}
		],
		"spotifyPlaylist": "Morning Acoustic"
	}` + "\n```"

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply(reply))
	})

	res, err := svc.AnalyzeMood(context.Background(), domain.MoodRequest{JournalText: "feeling better today"})
	require.NoError(t, err)
	assert.Equal(t, "Hopeful", res.Mood)
	assert.Equal(t, "#AACCEE", res.ColorPalette.Primary)
	assert.Equal(t, "Morning Acoustic", res.SpotifyPlaylist)
	require.Len(t, res.Recipes, 3)

	seen := make(map[string]bool)
	for _, r := range res.Recipes {
		assert.NotEmpty(t, r.ID, "every generated recipe gets an identifier")
		assert.False(t, seen[r.ID], "recipe identifiers must be unique")
		seen[r.ID] = true
	}
}

func TestSuggestDrinkMissingInput(t *testing.T) {
	var calls int64
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	})

	_, err := svc.SuggestDrink(context.Background(), domain.DrinkRequest{SongName: "Song"})
	assert.ErrorIs(t, err, domain.ErrDrinkInputRequired)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestSuggestDrinkSuccess(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply(`{"drinkName": "Iced Matcha", "drinkDescription": "Cool and focused."}`))
	})

	res, err := svc.SuggestDrink(context.Background(), domain.DrinkRequest{
		SongName:   "Holocene",
		ArtistName: "Bon Iver",
		Mood:       "Reflective",
	})
	require.NoError(t, err)
	assert.Equal(t, "Iced Matcha", res.DrinkName)
}

func TestSuggestDrinkFallbackOnProviderError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	res, err := svc.SuggestDrink(context.Background(), domain.DrinkRequest{
		SongName:   "Holocene",
		ArtistName: "Bon Iver",
		Mood:       "Reflective",
	})
	require.NoError(t, err)
	assert.Equal(t, FallbackDrink(), res)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"mood": "calm"}`,
			want:  `{"mood": "calm"}`,
		},
		{
			name:  "code fence",
			input: "```json\n{\"mood\": \"calm\"}\n```",
			want:  `{"mood": "calm"}`,
		},
		{
			name:  "prose around object",
			input: `Sure! Here you go: {"mood": "calm"} Hope that helps.`,
			want:  `{"mood": "calm"}`,
		},
		{
			name:  "nested objects",
			input: `{"a": {"b": 1}, "c": 2} trailing`,
			want:  `{"a": {"b": 1}, "c": 2}`,
		},
		{
			name:  "braces inside strings",
			input: `{"note": "use {curly} braces", "x": 1}`,
			want:  `{"note": "use {curly} braces", "x": 1}`,
		},
		{
			name:  "escaped quote inside string",
			input: `{"note": "she said \"hi {there}\"", "x": 1}`,
			want:  `{"note": "she said \"hi {there}\"", "x": 1}`,
		},
		{
			name:    "no object",
			input:   "no json here",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			input:   `{"mood": "calm"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoJSONPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
