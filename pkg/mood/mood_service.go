package mood

import (
	"Melt-App/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"
)

type (
	MoodService interface {
		AnalyzeMood(ctx context.Context, req domain.MoodRequest) (domain.MoodResponse, error)
		SuggestDrink(ctx context.Context, req domain.DrinkRequest) (domain.DrinkSuggestion, error)
		Status() domain.AIStatus
	}

	moodService struct {
		baseURL string
		client  *http.Client
	}
)

func NewMoodService() MoodService {
	return &moodService{
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FallbackMood is the static payload returned whenever the upstream call or
// its parsing fails. Provider failure is recoverable, never a 5xx.
func FallbackMood() domain.MoodResponse {
	return domain.MoodResponse{
		Mood: "Comfort-seeking",
		ColorPalette: domain.ColorPalette{
			Primary:   "#F5E6CC",
			Secondary: "#D9C3A9",
			Text:      "#333333",
			Accent:    "#C77D4A",
		},
		Recipes: []domain.MoodRecipe{
			{
				ID:            "1",
				Title:         "Masala Khichdi",
				Description:   "Warm, soothing comfort food.",
				Ingredients:   []string{"Rice", "Dal", "Spices"},
				FlavorProfile: []string{"Savory", "Mild"},
			},
			{
				ID:            "2",
				Title:         "Tomato Soup",
				Description:   "Simple, tangy, and cozy.",
				Ingredients:   []string{"Tomatoes", "Garlic", "Pepper"},
				FlavorProfile: []string{"Tangy", "Warm"},
			},
			{
				ID:            "3",
				Title:         "Hot Chocolate",
				Description:   "Rich, sweet, and heart-warming.",
				Ingredients:   []string{"Cocoa", "Milk", "Sugar"},
				FlavorProfile: []string{"Sweet", "Warm"},
			},
		},
		SpotifyPlaylist: "Rainy Day Jazz",
	}
}

func FallbackDrink() domain.DrinkSuggestion {
	return domain.DrinkSuggestion{
		DrinkName:        "Honey Lemon Tea",
		DrinkDescription: "A soothing drink that pairs well with cozy moods and chill music.",
	}
}

func (s *moodService) AnalyzeMood(ctx context.Context, req domain.MoodRequest) (domain.MoodResponse, error) {
	input := strings.TrimSpace(req.JournalText)
	if input == "" {
		return domain.MoodResponse{}, domain.ErrJournalTextRequired
	}

	prompt := fmt.Sprintf(
		"You are an empathetic AI named MELT. "+
			"Analyze the journal entry and return ONLY valid JSON in this format:\n\n"+
			"{\n"+
			"  \"mood\": string,\n"+
			"  \"colorPalette\": {\n"+
			"    \"primary\": string,\n"+
			"    \"secondary\": string,\n"+
			"    \"text\": string,\n"+
			"    \"accent\": string\n"+
			"  },\n"+
			"  \"recipes\": [\n"+
			"    { \"title\": string, \"description\": string, \"ingredients\": string[], \"flavorProfile\": string[] },\n"+
			"    { \"title\": string, \"description\": string, \"ingredients\": string[], \"flavorProfile\": string[] },\n"+
			"    { \"title\": string, \"description\": string, \"ingredients\": string[], \"flavorProfile\": string[] }\n"+
			"  ],\n"+
			"  \"spotifyPlaylist\": string\n"+
			"}\n\n"+
			"The color palette must be valid CSS colors matching the mood. "+
			"Journal entry:\n%q",
		input,
	)

	responseText, err := s.generateContent(ctx, prompt)
	if err != nil {
		log.Printf("gemini mood call failed, fallback used: %v", err)
		return FallbackMood(), nil
	}

	payload, err := extractJSONObject(responseText)
	if err != nil {
		log.Printf("gemini mood reply unparsable, fallback used: %v", err)
		return FallbackMood(), nil
	}

	var parsed struct {
		Mood         string              `json:"mood"`
		ColorPalette domain.ColorPalette `json:"colorPalette"`
		Recipes      []struct {
			Title         string   `json:"title"`
			Description   string   `json:"description"`
			Ingredients   []string `json:"ingredients"`
			FlavorProfile []string `json:"flavorProfile"`
		} `json:"recipes"`
		SpotifyPlaylist string `json:"spotifyPlaylist"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("gemini mood JSON invalid, fallback used: %v", err)
		return FallbackMood(), nil
	}
	if parsed.Mood == "" || len(parsed.Recipes) == 0 {
		log.Printf("gemini mood reply missing fields, fallback used")
		return FallbackMood(), nil
	}

	// Generated recipes are ephemeral; each gets a fresh identifier so the
	// client can save them into collections.
	recipes := make([]domain.MoodRecipe, 0, len(parsed.Recipes))
	for _, r := range parsed.Recipes {
		recipes = append(recipes, domain.MoodRecipe{
			ID:            uuid.New().String(),
			Title:         r.Title,
			Description:   r.Description,
			Ingredients:   r.Ingredients,
			FlavorProfile: r.FlavorProfile,
		})
	}

	return domain.MoodResponse{
		Mood:            parsed.Mood,
		ColorPalette:    parsed.ColorPalette,
		Recipes:         recipes,
		SpotifyPlaylist: parsed.SpotifyPlaylist,
	}, nil
}

func (s *moodService) SuggestDrink(ctx context.Context, req domain.DrinkRequest) (domain.DrinkSuggestion, error) {
	if req.SongName == "" || req.ArtistName == "" || req.Mood == "" {
		return domain.DrinkSuggestion{}, domain.ErrDrinkInputRequired
	}

	prompt := fmt.Sprintf(
		"Return ONLY JSON:\n"+
			"{\n"+
			"  \"drinkName\": string,\n"+
			"  \"drinkDescription\": string\n"+
			"}\n\n"+
			"Suggest a drink pairing for this song and mood.\n"+
			"Song: %q by %q\n"+
			"Mood: %q",
		req.SongName, req.ArtistName, req.Mood,
	)

	responseText, err := s.generateContent(ctx, prompt)
	if err != nil {
		log.Printf("gemini drink call failed, fallback used: %v", err)
		return FallbackDrink(), nil
	}

	payload, err := extractJSONObject(responseText)
	if err != nil {
		log.Printf("gemini drink reply unparsable, fallback used: %v", err)
		return FallbackDrink(), nil
	}

	var parsed domain.DrinkSuggestion
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		log.Printf("gemini drink JSON invalid, fallback used: %v", err)
		return FallbackDrink(), nil
	}
	if parsed.DrinkName == "" {
		log.Printf("gemini drink reply missing fields, fallback used")
		return FallbackDrink(), nil
	}

	return parsed, nil
}

func (s *moodService) Status() domain.AIStatus {
	apiKey := os.Getenv("GEMINI_API_KEY")
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	provider := "none"
	if apiKey != "" {
		provider = "gemini"
	}
	return domain.AIStatus{
		Ok:       true,
		Provider: provider,
		Model:    model,
		HasKey:   apiKey != "",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}
}

// generateContent makes a single Gemini call. No retries: any failure falls
// through to the static payload at the call site.
func (s *moodService) generateContent(ctx context.Context, prompt string) (string, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not configured")
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = defaultGeminiModel
	}

	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(geminiReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// extractJSONObject returns the first balanced {...} object in text. The
// model usually wraps the payload in prose or a code fence; scanning for the
// matching close brace tolerates braces appearing later in the reply, which a
// first-{/last-} slice would not.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", domain.ErrNoJSONPayload
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", domain.ErrNoJSONPayload
}
