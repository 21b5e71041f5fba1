// Package storage keeps the single stashed game snapshot.
package storage

import (
	"errors"
	"kalah/game"
	"sync"
	"time"
)

var ErrNoSnapshot = errors.New("no game has been stashed")

// Stash holds at most one snapshot; every Save replaces the previous one.
type Stash interface {
	Save(g game.Game) error
	Load() (game.Game, error)
	Close() error
}

// snapshot is the stored value
type snapshot struct {
	Game    game.Game `json:"game"`
	SavedAt time.Time `json:"saved_at"`
}

type memoryStash struct {
	mu       sync.Mutex
	snapshot *snapshot
}

func NewMemoryStash() Stash {
	return &memoryStash{}
}

func (s *memoryStash) Save(g game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &snapshot{Game: g, SavedAt: time.Now()}
	return nil
}

func (s *memoryStash) Load() (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return game.Game{}, ErrNoSnapshot
	}
	return s.snapshot.Game, nil
}

func (s *memoryStash) Close() error {
	return nil
}
