package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"marketplace/internal/cli"
	"marketplace/internal/config"
	"marketplace/internal/services"
	"marketplace/internal/store"
	"marketplace/internal/support"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	accounts := store.NewAccountStore()
	games := store.NewGameStore()

	accountSvc := services.NewAccountService(accounts)
	purchaseSvc := services.NewPurchaseService(accounts, games)
	catalogSvc := services.NewCatalogService(accounts, games, purchaseSvc)
	supportSvc := services.NewSupportService(accounts, support.NewChain())
	matchmakingSvc := services.NewMatchmakingService(accounts, games, cfg.MatchSize)

	ctx := context.Background()
	if err := seed(ctx, cfg, accounts, games, accountSvc, purchaseSvc, catalogSvc); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	ui := cli.New(bufio.NewReader(os.Stdin), os.Stdout,
		accountSvc, purchaseSvc, catalogSvc, supportSvc, matchmakingSvc)
	ui.Run(ctx)
}
