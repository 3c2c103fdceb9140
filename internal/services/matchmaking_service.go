package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"marketplace/internal/models"
)

// MatchmakingService keeps a FIFO queue per game and forms a match whenever
// a queue reaches the configured size. Queue state lives for the session
// only.
type MatchmakingService struct {
	accounts AccountStore
	games    GameStore

	mu     sync.Mutex
	queues map[string][]string
	size   int
}

func NewMatchmakingService(accounts AccountStore, games GameStore, matchSize int) *MatchmakingService {
	if matchSize < 2 {
		matchSize = 2
	}
	return &MatchmakingService{
		accounts: accounts,
		games:    games,
		queues:   make(map[string][]string),
		size:     matchSize,
	}
}

func (s *MatchmakingService) MatchSize() int {
	return s.size
}

// Join puts the player in the game's queue and returns the queue length.
// Joining requires owning the game; a player queues at most once per game.
func (s *MatchmakingService) Join(ctx context.Context, accountName, gameName string) (int, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return 0, err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return 0, err
	}
	if _, owned := account.Library[game.Name]; !owned {
		return 0, ErrNotOwned
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.queues[game.Name]
	for _, queued := range queue {
		if queued == account.Name {
			return 0, ErrAlreadyQueued
		}
	}
	queue = append(queue, account.Name)
	s.queues[game.Name] = queue
	return len(queue), nil
}

// TryMatch forms a match from the front of the queue when enough players
// are waiting. The second result reports whether a match formed.
func (s *MatchmakingService) TryMatch(ctx context.Context, gameName string) (models.Match, bool, error) {
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return models.Match{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.queues[game.Name]
	if len(queue) < s.size {
		return models.Match{}, false, nil
	}
	players := append([]string(nil), queue[:s.size]...)
	s.queues[game.Name] = queue[s.size:]
	return models.Match{
		ID:      uuid.NewString(),
		Game:    game.Name,
		Players: players,
	}, true, nil
}

// Queued reports how many players wait in the game's queue.
func (s *MatchmakingService) Queued(gameName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues[gameName])
}
