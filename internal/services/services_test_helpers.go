package services

import (
	"context"
	"testing"

	"marketplace/internal/models"
	"marketplace/internal/money"
	"marketplace/internal/store"
	"marketplace/internal/support"
)

type testEnv struct {
	accounts    *store.AccountStore
	games       *store.GameStore
	accountSvc  *AccountService
	purchaseSvc *PurchaseService
	catalogSvc  *CatalogService
	supportSvc  *SupportService
	matchSvc    *MatchmakingService
}

func newTestEnv() *testEnv {
	accounts := store.NewAccountStore()
	games := store.NewGameStore()
	purchaseSvc := NewPurchaseService(accounts, games)
	return &testEnv{
		accounts:    accounts,
		games:       games,
		accountSvc:  NewAccountService(accounts),
		purchaseSvc: purchaseSvc,
		catalogSvc:  NewCatalogService(accounts, games, purchaseSvc),
		supportSvc:  NewSupportService(accounts, support.NewChain()),
		matchSvc:    NewMatchmakingService(accounts, games, 2),
	}
}

// addAccount seeds an account directly in the store, skipping registration,
// so tests can set up admins and pre-approved children.
func (e *testEnv) addAccount(t *testing.T, account models.Account) models.Account {
	t.Helper()
	if account.ID == "" {
		account.ID = account.Name + "-id"
	}
	if account.Email == "" {
		account.Email = account.Name + "@example.com"
	}
	if account.Password == "" {
		account.Password = "secret1"
	}
	if account.Library == nil {
		account.Library = make(map[string]models.OwnedGame)
	}
	if account.Unlocked == nil {
		account.Unlocked = make(map[string]map[string]bool)
	}
	if err := e.accounts.Create(context.Background(), account); err != nil {
		t.Fatalf("seed account %s: %v", account.Name, err)
	}
	return account
}

func (e *testEnv) addAdult(t *testing.T, name string) models.Account {
	t.Helper()
	return e.addAccount(t, models.Account{Name: name, Age: 30, Kind: models.KindAdult})
}

func (e *testEnv) addAdmin(t *testing.T, name string) models.Account {
	t.Helper()
	return e.addAccount(t, models.Account{Name: name, Age: 40, Kind: models.KindAdmin})
}

func (e *testEnv) addGame(t *testing.T, game models.Game) models.Game {
	t.Helper()
	if game.ID == "" {
		game.ID = game.Name + "-id"
	}
	if game.Kind == "" {
		game.Kind = models.GameOnline
	}
	if game.Platforms == nil {
		game.Platforms = map[models.Platform]bool{models.PlatformPC: true}
	}
	if game.Version == "" {
		game.Version = "1.0.0"
	}
	if game.Items == nil {
		game.Items = make(map[string]money.Money)
	}
	if game.Achievements == nil {
		game.Achievements = make(map[string]models.Achievement)
	}
	if game.Scores == nil {
		game.Scores = make(map[string]int64)
	}
	if err := e.games.Create(context.Background(), game); err != nil {
		t.Fatalf("seed game %s: %v", game.Name, err)
	}
	return game
}

// giveGame puts the game in the account's library at its current version.
func (e *testEnv) giveGame(t *testing.T, accountName, gameName string) {
	t.Helper()
	ctx := context.Background()
	account, err := e.accounts.Get(ctx, accountName)
	if err != nil {
		t.Fatalf("get account %s: %v", accountName, err)
	}
	game, err := e.games.Get(ctx, gameName)
	if err != nil {
		t.Fatalf("get game %s: %v", gameName, err)
	}
	account.Library[game.Name] = models.OwnedGame{InstalledVersion: game.Version}
	if err := e.accounts.Save(ctx, account); err != nil {
		t.Fatalf("save account %s: %v", accountName, err)
	}
}

func (e *testEnv) deposit(t *testing.T, accountName string, amount money.Money) {
	t.Helper()
	if _, err := e.purchaseSvc.Deposit(context.Background(), accountName, amount); err != nil {
		t.Fatalf("deposit for %s: %v", accountName, err)
	}
}
