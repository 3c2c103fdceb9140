package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"marketplace/internal/models"
	"marketplace/internal/money"
)

// CatalogService holds the administrator-facing catalog operations plus the
// game-centric reads (rankings, forums, patch history). Mutations require an
// admin actor.
type CatalogService struct {
	accounts AccountStore
	games    GameStore
	unlocks  *PurchaseService
	now      func() time.Time
}

func NewCatalogService(accounts AccountStore, games GameStore, unlocks *PurchaseService) *CatalogService {
	return &CatalogService{accounts: accounts, games: games, unlocks: unlocks, now: time.Now}
}

type AddGameRequest struct {
	Name      string
	Kind      models.GameKind
	Price     money.Money
	Platforms []models.Platform
}

// AddGame publishes a new game at version 1.0.0. An empty platform list
// defaults to PC.
func (s *CatalogService) AddGame(ctx context.Context, actor string, req AddGameRequest) (models.Game, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return models.Game{}, err
	}
	if req.Kind != models.GameOnline && req.Kind != models.GameOffline {
		return models.Game{}, ErrInvalidGameKind
	}
	if req.Price.IsNegative() {
		return models.Game{}, ErrInvalidPrice
	}
	platforms := make(map[models.Platform]bool, len(req.Platforms))
	for _, platform := range req.Platforms {
		if !models.AllowedPlatforms[platform] {
			return models.Game{}, ErrInvalidPlatform
		}
		platforms[platform] = true
	}
	if len(platforms) == 0 {
		platforms[models.PlatformPC] = true
	}
	game := models.Game{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Kind:         req.Kind,
		Price:        req.Price,
		Platforms:    platforms,
		Version:      "1.0.0",
		Items:        make(map[string]money.Money),
		Achievements: make(map[string]models.Achievement),
		Scores:       make(map[string]int64),
		CreatedAt:    s.now(),
	}
	if err := s.games.Create(ctx, game); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

// AddItem puts a priced item in the game's store.
func (s *CatalogService) AddItem(ctx context.Context, actor, gameName, itemName string, price money.Money) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return err
	}
	if game.Items == nil {
		game.Items = make(map[string]money.Money)
	}
	game.Items[itemName] = price
	return s.games.Save(ctx, game)
}

// PublishPatch appends to the patch history and replaces the current
// version. No ordering between version strings is enforced; the catalog
// only ever substitutes the value.
func (s *CatalogService) PublishPatch(ctx context.Context, actor, gameName, version, notes string) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if version == "" {
		return ErrEmptyVersion
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return err
	}
	game.Version = version
	game.Patches = append(game.Patches, models.Patch{Version: version, Notes: notes})
	return s.games.Save(ctx, game)
}

// RegisterAchievement registers (or replaces) an achievement on a game.
func (s *CatalogService) RegisterAchievement(ctx context.Context, actor, gameName string, achievement models.Achievement) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if achievement.Code == "" {
		return ErrEmptyAchievement
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return err
	}
	if game.Achievements == nil {
		game.Achievements = make(map[string]models.Achievement)
	}
	game.Achievements[achievement.Code] = achievement
	return s.games.Save(ctx, game)
}

// AddScore credits points to a player who owns the game, then runs the
// achievement unlock check against the new total.
func (s *CatalogService) AddScore(ctx context.Context, actor, playerName, gameName string, points int64) (int64, []models.Achievement, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return 0, nil, err
	}
	player, err := s.accounts.Get(ctx, playerName)
	if err != nil {
		return 0, nil, err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return 0, nil, err
	}
	if _, owned := player.Library[game.Name]; !owned {
		return 0, nil, ErrNotOwned
	}
	if game.Scores == nil {
		game.Scores = make(map[string]int64)
	}
	game.Scores[player.Name] += points
	total := game.Scores[player.Name]
	if err := s.games.Save(ctx, game); err != nil {
		return 0, nil, err
	}
	unlocked, err := s.unlocks.UnlockAchievements(ctx, playerName, gameName, EligibleAchievements(game, total))
	if err != nil {
		return 0, nil, err
	}
	return total, unlocked, nil
}

// EligibleAchievements returns the achievements whose threshold the point
// total reaches.
func EligibleAchievements(game models.Game, points int64) []models.Achievement {
	var eligible []models.Achievement
	for _, achievement := range game.Achievements {
		if points >= achievement.MinPoints {
			eligible = append(eligible, achievement)
		}
	}
	return eligible
}

type ScoreEntry struct {
	Player string
	Points int64
}

// Ranking lists the game's scores, highest first; ties break on player name.
func (s *CatalogService) Ranking(ctx context.Context, gameName string) ([]ScoreEntry, error) {
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return nil, err
	}
	entries := make([]ScoreEntry, 0, len(game.Scores))
	for player, points := range game.Scores {
		entries = append(entries, ScoreEntry{Player: player, Points: points})
	}
	slices.SortFunc(entries, func(a, b ScoreEntry) int {
		if a.Points != b.Points {
			if a.Points > b.Points {
				return -1
			}
			return 1
		}
		if a.Player < b.Player {
			return -1
		}
		if a.Player > b.Player {
			return 1
		}
		return 0
	})
	return entries, nil
}

// ListGames returns the full catalog.
func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.games.List(ctx)
}

func (s *CatalogService) GetGame(ctx context.Context, name string) (models.Game, error) {
	return s.games.Get(ctx, name)
}

// ListUsers is the admin directory listing.
func (s *CatalogService) ListUsers(ctx context.Context, actor string) ([]models.Account, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	return s.accounts.List(ctx)
}

// PostToForum appends a post to an online game's forum. The author must own
// the game.
func (s *CatalogService) PostToForum(ctx context.Context, authorName, gameName, message string) error {
	author, err := s.accounts.Get(ctx, authorName)
	if err != nil {
		return err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return err
	}
	if game.Kind != models.GameOnline {
		return ErrForumUnavailable
	}
	if _, owned := author.Library[game.Name]; !owned {
		return ErrNotOwned
	}
	game.Forum = append(game.Forum, models.ForumPost{Author: author.Name, Message: message})
	return s.games.Save(ctx, game)
}

// ForumPosts reads an online game's forum; viewing requires ownership, same
// as posting.
func (s *CatalogService) ForumPosts(ctx context.Context, accountName, gameName string) ([]models.ForumPost, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return nil, err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return nil, err
	}
	if game.Kind != models.GameOnline {
		return nil, ErrForumUnavailable
	}
	if _, owned := account.Library[game.Name]; !owned {
		return nil, ErrNotOwned
	}
	return game.Forum, nil
}

func (s *CatalogService) requireAdmin(ctx context.Context, actor string) error {
	account, err := s.accounts.Get(ctx, actor)
	if err != nil {
		return fmt.Errorf("resolve actor: %w", err)
	}
	if account.Kind != models.KindAdmin {
		return ErrNotAdmin
	}
	return nil
}
