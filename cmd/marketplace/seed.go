package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/config"
	"marketplace/internal/models"
	"marketplace/internal/money"
	"marketplace/internal/services"
	"marketplace/internal/store"
)

// seed creates the admin account and, unless disabled, the demo catalog and
// users the CLI starts with.
func seed(
	ctx context.Context,
	cfg config.Config,
	accounts *store.AccountStore,
	games *store.GameStore,
	accountSvc *services.AccountService,
	purchaseSvc *services.PurchaseService,
	catalogSvc *services.CatalogService,
) error {
	admin := models.Account{
		ID:        uuid.NewString(),
		Name:      cfg.AdminName,
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
		Age:       23,
		Kind:      models.KindAdmin,
		Library:   make(map[string]models.OwnedGame),
		Unlocked:  make(map[string]map[string]bool),
		CreatedAt: time.Now(),
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if !cfg.SeedDemo {
		return nil
	}

	raiders, err := catalogSvc.AddGame(ctx, admin.Name, services.AddGameRequest{
		Name:      "Poly_Raiders",
		Kind:      models.GameOnline,
		Price:     money.FromMajor(100),
		Platforms: []models.Platform{models.PlatformPC, models.PlatformConsole},
	})
	if err != nil {
		return err
	}
	if _, err := catalogSvc.AddGame(ctx, admin.Name, services.AddGameRequest{
		Name:      "Semester_Rush",
		Kind:      models.GameOffline,
		Price:     money.FromMajor(50),
		Platforms: []models.Platform{models.PlatformPC},
	}); err != nil {
		return err
	}
	if err := catalogSvc.AddItem(ctx, admin.Name, raiders.Name, "Extra_Point", money.FromMajor(10)); err != nil {
		return err
	}
	for _, achievement := range []models.Achievement{
		{Code: "P100", Title: "First Steps", Description: "Score at least 100 points.", MinPoints: 100},
		{Code: "P1000", Title: "Veteran", Description: "Score at least 1000 points.", MinPoints: 1000},
	} {
		if err := catalogSvc.RegisterAchievement(ctx, admin.Name, raiders.Name, achievement); err != nil {
			return err
		}
	}

	adult, err := accountSvc.Register(ctx, services.RegisterRequest{
		Name: "alex", Email: "alex@example.com", Password: "alex123", Age: 30,
	})
	if err != nil {
		return err
	}
	robin, err := accountSvc.Register(ctx, services.RegisterRequest{
		Name: "robin", Email: "robin@example.com", Password: "robin123", Age: 12,
		GuardianEmail: adult.Email,
	})
	if err != nil {
		return err
	}
	if _, err := accountSvc.Register(ctx, services.RegisterRequest{
		Name: "casey", Email: "casey@example.com", Password: "casey123", Age: 10,
		GuardianEmail: adult.Email,
	}); err != nil {
		return err
	}

	if _, err := purchaseSvc.Deposit(ctx, adult.Name, money.FromMajor(250)); err != nil {
		return err
	}
	if _, err := purchaseSvc.Deposit(ctx, robin.Name, money.FromMajor(75)); err != nil {
		return err
	}
	// robin may buy items but not games.
	if err := accountSvc.ApproveDependent(ctx, adult.Name, robin.Name, true, false); err != nil {
		return err
	}

	if _, err := purchaseSvc.PurchaseGame(ctx, adult.Name, raiders.Name); err != nil {
		return err
	}
	if _, _, err := catalogSvc.AddScore(ctx, admin.Name, adult.Name, raiders.Name, 2100); err != nil {
		return err
	}

	// Demo texture that bypasses the usual gates: a forum post by the admin
	// and a score for a player who does not own the game.
	game, err := games.Get(ctx, raiders.Name)
	if err != nil {
		return err
	}
	game.Forum = append(game.Forum, models.ForumPost{Author: admin.Name, Message: "Welcome to the launch forum!"})
	game.Scores[robin.Name] = 1250
	if err := games.Save(ctx, game); err != nil {
		return err
	}
	if _, err := purchaseSvc.UnlockAchievements(ctx, robin.Name, raiders.Name,
		services.EligibleAchievements(game, game.Scores[robin.Name])); err != nil {
		return err
	}
	return nil
}
