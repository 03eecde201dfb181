package controller

import (
	"Melt-App/domain"
	"Melt-App/internal/client/spotify"
	"Melt-App/internal/client/store"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"
)

type Screen string

const (
	ScreenMain        Screen = "main"
	ScreenCollections Screen = "collections"
	ScreenJournal     Screen = "journal"
	ScreenCommunity   Screen = "community"
	ScreenAdmin       Screen = "admin"
)

type (
	// Backend is the slice of the server API the controller drives itself.
	Backend interface {
		AnalyzeMood(ctx context.Context, journalText string) (domain.MoodResponse, error)
		SuggestDrink(ctx context.Context, songName, artistName, mood string) (domain.DrinkSuggestion, error)
		AdminUsers(ctx context.Context) ([]domain.UserProfile, error)
		AdminCollections(ctx context.Context) ([]domain.Collection, error)
		AdminHistory(ctx context.Context) ([]domain.JournalEntry, error)
	}

	// Player is the currently-playing side of the Spotify API.
	Player interface {
		CurrentlyPlaying(ctx context.Context, token string) (*spotify.CurrentlyPlaying, error)
	}

	// Controller holds the screen state, the held mood analysis, and the
	// playback-driven drink suggestion. All state behind one mutex.
	Controller struct {
		store   *store.LocalStore
		backend Backend
		player  Player

		mu         sync.Mutex
		screen     Screen
		mood       *domain.MoodResponse
		entrySaved bool

		nowPlaying    *spotify.CurrentlyPlaying
		drink         *domain.DrinkSuggestion
		lastTrackID   string
		fetchingDrink bool
		stopPoll      chan struct{}

		adminUsers       []domain.UserProfile
		adminCollections []domain.Collection
		adminHistory     []domain.JournalEntry
	}
)

func NewController(store *store.LocalStore, backend Backend, player Player) *Controller {
	return &Controller{
		store:   store,
		backend: backend,
		player:  player,
		screen:  ScreenMain,
	}
}

func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// SetScreen switches screens. Entering admin loads the three admin lists up
// front; returning to main drops the held analysis so the journal form
// starts clean.
func (c *Controller) SetScreen(ctx context.Context, screen Screen) error {
	if screen == ScreenAdmin {
		users, err := c.backend.AdminUsers(ctx)
		if err != nil {
			return err
		}
		collections, err := c.backend.AdminCollections(ctx)
		if err != nil {
			return err
		}
		history, err := c.backend.AdminHistory(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.adminUsers = users
		c.adminCollections = collections
		c.adminHistory = history
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.screen = screen
	if screen == ScreenMain {
		c.mood = nil
		c.entrySaved = false
	}
	c.mu.Unlock()
	return nil
}

// SubmitJournal sends the journal text for analysis and holds the result
// until the user saves it or leaves the screen.
func (c *Controller) SubmitJournal(ctx context.Context, journalText string) (domain.MoodResponse, error) {
	if strings.TrimSpace(journalText) == "" {
		return domain.MoodResponse{}, domain.ErrJournalTextRequired
	}

	res, err := c.backend.AnalyzeMood(ctx, journalText)
	if err != nil {
		return domain.MoodResponse{}, err
	}

	c.mu.Lock()
	c.mood = &res
	c.entrySaved = false
	c.mu.Unlock()
	return res, nil
}

func (c *Controller) Mood() *domain.MoodResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mood
}

func (c *Controller) MarkEntrySaved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entrySaved = true
}

func (c *Controller) EntrySaved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entrySaved
}

func (c *Controller) NowPlaying() *spotify.CurrentlyPlaying {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowPlaying
}

func (c *Controller) Drink() *domain.DrinkSuggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drink
}

func (c *Controller) AdminData() ([]domain.UserProfile, []domain.Collection, []domain.JournalEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adminUsers, c.adminCollections, c.adminHistory
}

// StartPolling begins the playback poll loop. Calling it again while a loop
// is running is a no-op.
func (c *Controller) StartPolling(interval time.Duration) {
	c.mu.Lock()
	if c.stopPoll != nil {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stopPoll = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				c.Poll(ctx)
				cancel()
			}
		}
	}()
}

func (c *Controller) StopPolling() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopPoll != nil {
		close(c.stopPoll)
		c.stopPoll = nil
	}
}

// Poll runs one playback check. A track-id change clears the held drink and
// triggers one pairing request for the new track; the in-flight flag makes
// sure overlapping polls never stack requests.
func (c *Controller) Poll(ctx context.Context) {
	token := c.store.SpotifyToken()
	if token == "" {
		return
	}

	playing, err := c.player.CurrentlyPlaying(ctx, token)
	if err != nil {
		if errors.Is(err, spotify.ErrSessionExpired) {
			c.SpotifyLogout()
			return
		}
		log.Printf("playback poll failed: %v", err)
		return
	}

	c.mu.Lock()
	c.nowPlaying = playing
	trackID := ""
	if playing != nil && playing.Item != nil {
		trackID = playing.Item.ID
	}
	if trackID == c.lastTrackID {
		c.mu.Unlock()
		return
	}
	c.lastTrackID = trackID
	c.drink = nil
	if trackID == "" || !playing.IsPlaying || c.fetchingDrink {
		c.mu.Unlock()
		return
	}
	c.fetchingDrink = true
	song := playing.Item.Name
	artist := ""
	if len(playing.Item.Artists) > 0 {
		artist = playing.Item.Artists[0].Name
	}
	mood := "neutral"
	if c.mood != nil && c.mood.Mood != "" {
		mood = c.mood.Mood
	}
	c.mu.Unlock()

	suggestion, err := c.backend.SuggestDrink(ctx, song, artist, mood)

	c.mu.Lock()
	c.fetchingDrink = false
	if err != nil {
		log.Printf("drink pairing failed: %v", err)
	} else if c.lastTrackID == trackID {
		// Only keep the answer if the track has not changed under us.
		c.drink = &suggestion
	}
	c.mu.Unlock()
}

// SpotifyLogout drops the token and every piece of playback state.
func (c *Controller) SpotifyLogout() {
	c.StopPolling()
	if err := c.store.ClearSpotifyToken(); err != nil {
		log.Printf("failed to clear spotify token: %v", err)
	}
	c.mu.Lock()
	c.nowPlaying = nil
	c.drink = nil
	c.lastTrackID = ""
	c.mu.Unlock()
}
