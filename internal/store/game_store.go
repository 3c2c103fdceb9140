package store

import (
	"context"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"marketplace/internal/models"
)

// GameStore is the canonical in-memory catalog, keyed by game name. Reads
// return deep copies.
type GameStore struct {
	mu    sync.RWMutex
	games map[string]models.Game
}

func NewGameStore() *GameStore {
	return &GameStore{games: make(map[string]models.Game)}
}

func (s *GameStore) Create(_ context.Context, game models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.Name]; ok {
		return ErrGameExists
	}
	s.games[game.Name] = game.Clone()
	return nil
}

func (s *GameStore) Get(_ context.Context, name string) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[name]
	if !ok {
		return models.Game{}, ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *GameStore) Save(_ context.Context, game models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.Name]; !ok {
		return ErrGameNotFound
	}
	s.games[game.Name] = game.Clone()
	return nil
}

// List returns copies of every game, sorted by name.
func (s *GameStore) List(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := maps.Keys(s.games)
	slices.Sort(names)
	out := make([]models.Game, 0, len(names))
	for _, name := range names {
		out = append(out, s.games[name].Clone())
	}
	return out, nil
}
