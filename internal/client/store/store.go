package store

import (
	"Melt-App/domain"
	"encoding/json"
	"os"
	"sync"
)

// LocalStore is the terminal client's stand-in for the browser's local
// storage: one JSON file of whole-collection blobs, always read-all /
// filter / write-all, never partial updates.
type LocalStore struct {
	path string
	mu   sync.Mutex
	data storeData
}

type storeData struct {
	Session       *Session               `json:"meltCurrentUser,omitempty"`
	Collections   []domain.Collection    `json:"meltAllCollections"`
	MoodHistory   []domain.JournalEntry  `json:"meltAllHistory"`
	PublicRecipes []domain.PublicRecipe  `json:"meltPublicRecipes"`
	SpotifyToken  string                 `json:"spotifyToken,omitempty"`
}

type Session struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = storeData{}
			return nil
		}
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(&s.data)
}

func (s *LocalStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(&s.data)
}

func (s *LocalStore) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Session
}

func (s *LocalStore) SetSession(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Session = session
	return s.save()
}

func (s *LocalStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Session = nil
	return s.save()
}

func (s *LocalStore) SpotifyToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.SpotifyToken
}

func (s *LocalStore) SetSpotifyToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SpotifyToken = token
	return s.save()
}

func (s *LocalStore) ClearSpotifyToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SpotifyToken = ""
	return s.save()
}

// Collections returns only the owner's collections.
func (s *LocalStore) Collections(userID string) []domain.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Collection
	for _, c := range s.data.Collections {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result
}

// ReplaceCollections swaps out one owner's collections and keeps everyone
// else's, the same way the web client rewrote the shared blob.
func (s *LocalStore) ReplaceCollections(userID string, collections []domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.Collection, 0, len(s.data.Collections)+len(collections))
	for _, c := range s.data.Collections {
		if c.UserID != userID {
			kept = append(kept, c)
		}
	}
	s.data.Collections = append(kept, collections...)
	return s.save()
}

func (s *LocalStore) History(userID string) []domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.JournalEntry
	for _, e := range s.data.MoodHistory {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result
}

func (s *LocalStore) ReplaceHistory(userID string, entries []domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.JournalEntry, 0, len(s.data.MoodHistory)+len(entries))
	for _, e := range s.data.MoodHistory {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	s.data.MoodHistory = append(kept, entries...)
	return s.save()
}

func (s *LocalStore) PublicRecipes() []domain.PublicRecipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.PublicRecipes
}

func (s *LocalStore) SetPublicRecipes(recipes []domain.PublicRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PublicRecipes = recipes
	return s.save()
}
