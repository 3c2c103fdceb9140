package services

import (
	"context"

	"marketplace/internal/models"
	"marketplace/internal/money"
)

// PurchaseService owns the wallet and library operations: deposits, game and
// item purchases with their gating rules, patch applies and achievement
// unlocks. Failed operations never save, so account state is unchanged on
// any error.
type PurchaseService struct {
	accounts AccountStore
	games    GameStore
}

func NewPurchaseService(accounts AccountStore, games GameStore) *PurchaseService {
	return &PurchaseService{accounts: accounts, games: games}
}

// Deposit credits the account wallet and returns the new balance.
func (s *PurchaseService) Deposit(ctx context.Context, accountName string, amount money.Money) (money.Money, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return 0, err
	}
	if err := account.Wallet.Credit(amount); err != nil {
		return 0, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return 0, err
	}
	return account.Wallet.Balance(), nil
}

func (s *PurchaseService) Balance(ctx context.Context, accountName string) (money.Money, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return 0, err
	}
	return account.Wallet.Balance(), nil
}

// PurchaseGame runs the full gate sequence: child approval/permission,
// duplicate ownership, platform compatibility, then funds. On success the
// game is recorded with the version current at purchase time.
func (s *PurchaseService) PurchaseGame(ctx context.Context, accountName, gameName string) (models.Account, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return models.Account{}, err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return models.Account{}, err
	}
	if err := gatePurchase(account, false); err != nil {
		return models.Account{}, err
	}
	if _, owned := account.Library[game.Name]; owned {
		return models.Account{}, ErrAlreadyOwned
	}
	if account.Platform != "" && !game.Platforms[account.Platform] {
		return models.Account{}, ErrIncompatiblePlatform
	}
	if err := account.Wallet.Debit(game.Price); err != nil {
		return models.Account{}, err
	}
	if account.Library == nil {
		account.Library = make(map[string]models.OwnedGame)
	}
	account.Library[game.Name] = models.OwnedGame{InstalledVersion: game.Version}
	if err := s.accounts.Save(ctx, account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// PurchaseItem buys a consumable store item of an owned game. Only the debit
// persists; no inventory is recorded.
func (s *PurchaseService) PurchaseItem(ctx context.Context, accountName, gameName, itemName string) (money.Money, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return 0, err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return 0, err
	}
	if err := gatePurchase(account, true); err != nil {
		return 0, err
	}
	if _, owned := account.Library[game.Name]; !owned {
		return 0, ErrNotOwned
	}
	price, ok := game.Items[itemName]
	if !ok {
		return 0, ErrItemNotFound
	}
	if err := account.Wallet.Debit(price); err != nil {
		return 0, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return 0, err
	}
	return account.Wallet.Balance(), nil
}

// ApplyPatch moves the installed version of an owned game to the catalog's
// current version. Returns false when the game is already up to date; that
// is a report, not an error.
func (s *PurchaseService) ApplyPatch(ctx context.Context, accountName, gameName string) (bool, string, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return false, "", err
	}
	game, err := s.games.Get(ctx, gameName)
	if err != nil {
		return false, "", err
	}
	owned, ok := account.Library[game.Name]
	if !ok {
		return false, "", ErrNotOwned
	}
	if owned.InstalledVersion == game.Version {
		return false, game.Version, nil
	}
	owned.InstalledVersion = game.Version
	account.Library[game.Name] = owned
	if err := s.accounts.Save(ctx, account); err != nil {
		return false, "", err
	}
	return true, game.Version, nil
}

// UnlockAchievements records every candidate not yet unlocked for the game
// and returns the newly unlocked ones; an empty result means none were new.
func (s *PurchaseService) UnlockAchievements(ctx context.Context, accountName, gameName string, candidates []models.Achievement) ([]models.Achievement, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return nil, err
	}
	if account.Unlocked == nil {
		account.Unlocked = make(map[string]map[string]bool)
	}
	unlocked := account.Unlocked[gameName]
	if unlocked == nil {
		unlocked = make(map[string]bool)
		account.Unlocked[gameName] = unlocked
	}
	var fresh []models.Achievement
	for _, candidate := range candidates {
		if unlocked[candidate.Code] {
			continue
		}
		unlocked[candidate.Code] = true
		fresh = append(fresh, candidate)
	}
	if len(fresh) == 0 {
		return nil, nil
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ShopListing returns the games the account can still buy: not owned and,
// when a platform preference is set, compatible with it.
func (s *PurchaseService) ShopListing(ctx context.Context, accountName string) ([]models.Game, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return nil, err
	}
	all, err := s.games.List(ctx)
	if err != nil {
		return nil, err
	}
	var available []models.Game
	for _, game := range all {
		if _, owned := account.Library[game.Name]; owned {
			continue
		}
		if account.Platform != "" && !game.Platforms[account.Platform] {
			continue
		}
		available = append(available, game)
	}
	return available, nil
}

// gatePurchase applies the child-account gate: approval first, then the
// permission flag matching the purchase kind. Other kinds pass through.
func gatePurchase(account models.Account, itemPurchase bool) error {
	if account.Kind != models.KindChild {
		return nil
	}
	if account.Approval != models.ApprovalApproved {
		return ErrApprovalRequired
	}
	if itemPurchase {
		if !account.CanBuyItems {
			return ErrPermissionDenied
		}
		return nil
	}
	if !account.CanBuyGames {
		return ErrPermissionDenied
	}
	return nil
}
