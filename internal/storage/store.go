// Package storage keeps the scores of the current arcade session in memory.
// Nothing is written to disk; the book is discarded when the process exits.
package storage

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"
)

// DefaultLimit is used by TopScores when no positive limit is given.
const DefaultLimit = 10

// Store records finished games for one session. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []ScoreEntry
	nextID  int64
	now     func() time.Time
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// New creates an empty session store.
func New() *Store {
	return &Store{now: time.Now}
}

// SaveScore records a new score for the given game.
// Returns the ID of the new entry.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	if gameID == "" {
		return 0, errors.New("storage: cannot save score: empty game id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.entries = append(s.entries, ScoreEntry{
		ID:        s.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: s.now(),
	})
	return s.nextID, nil
}

// TopScores returns up to limit scores for the game, highest first.
// Equal scores keep the order they were recorded in.
func (s *Store) TopScores(gameID string, limit int) []ScoreEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	all := s.AllScores(gameID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// AllScores returns every score for the game, highest first.
func (s *Store) AllScores(gameID string) []ScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []ScoreEntry
	for _, e := range s.entries {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return entries
}

// HighScore returns the highest score for the game, or 0 if none exist.
func (s *Store) HighScore(gameID string) int {
	top := s.TopScores(gameID, 1)
	if len(top) == 0 {
		return 0
	}
	return top[0].Score
}

// ClearScores forgets all scores for the game.
func (s *Store) ClearScores(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.DeleteFunc(s.entries, func(e ScoreEntry) bool {
		return e.GameID == gameID
	})
}

// Len returns the number of recorded games across all IDs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
