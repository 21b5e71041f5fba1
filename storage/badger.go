package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"kalah/game"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

const keySnapshot = "stash"

// BadgerStash persists the snapshot under a single key.
type BadgerStash struct {
	db *badger.DB
}

// NewBadgerStash opens the database in dir, or an in-memory database when
// dir is empty.
func NewBadgerStash(dir string) (*BadgerStash, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open stash %q: %w", dir, err)
	}
	log.Debug().Msgf("opened stash at %q", dir)

	return &BadgerStash{db: db}, nil
}

func (s *BadgerStash) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BadgerStash) Save(g game.Game) error {
	data, err := json.Marshal(snapshot{Game: g, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySnapshot), data)
	})
}

func (s *BadgerStash) Load() (game.Game, error) {
	var stored snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySnapshot))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return game.Game{}, err
	}

	log.Debug().Msgf("loaded snapshot saved at %s", stored.SavedAt.Format(time.RFC3339))
	return stored.Game, nil
}
