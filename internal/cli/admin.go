package cli

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

func (ui *UI) adminMenu(ctx context.Context, actor string) {
	for {
		fmt.Fprintln(ui.out, "\n=== ADMIN ===")
		fmt.Fprintln(ui.out, "1 - Manage games")
		fmt.Fprintln(ui.out, "2 - Add score for a player")
		fmt.Fprintln(ui.out, "3 - List users")
		fmt.Fprintln(ui.out, "4 - Publish a patch")
		fmt.Fprintln(ui.out, "5 - Register achievements")
		fmt.Fprintln(ui.out, "6 - Logout")
		choice := ui.readLine("> ")
		if ui.eof {
			return
		}
		switch choice {
		case "1":
			ui.manageGames(ctx, actor)
		case "2":
			ui.addScore(ctx, actor)
		case "3":
			ui.listUsers(ctx, actor)
		case "4":
			ui.publishPatch(ctx, actor)
		case "5":
			ui.registerAchievements(ctx, actor)
		case "6":
			return
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
	}
}

func (ui *UI) manageGames(ctx context.Context, actor string) {
	for {
		fmt.Fprintln(ui.out, "\n--- Game management ---")
		fmt.Fprintln(ui.out, "1 - Add game")
		fmt.Fprintln(ui.out, "2 - Add item to a game")
		fmt.Fprintln(ui.out, "3 - List patches of a game")
		fmt.Fprintln(ui.out, "4 - Back")
		choice := ui.readLine("> ")
		if ui.eof {
			return
		}
		switch choice {
		case "1":
			ui.addGame(ctx, actor)
		case "2":
			ui.addItem(ctx, actor)
		case "3":
			ui.listPatches(ctx)
		case "4":
			return
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
	}
}

func (ui *UI) addGame(ctx context.Context, actor string) {
	req := services.AddGameRequest{Name: ui.readLine("Game name: ")}
	price, err := ui.readMoney("Price in coins: ")
	if err != nil {
		ui.printErr(err)
		return
	}
	req.Price = price
	raw := ui.readLine("Supported platforms (e.g. PC,Mobile,Console): ")
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			req.Platforms = append(req.Platforms, models.Platform(trimmed))
		}
	}
	switch ui.readLine("Is the game (1) online or (2) offline? ") {
	case "1":
		req.Kind = models.GameOnline
	case "2":
		req.Kind = models.GameOffline
	default:
		fmt.Fprintln(ui.out, "Invalid kind. Game not created.")
		return
	}
	if _, err := ui.catalog.AddGame(ctx, actor, req); err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintln(ui.out, "Game added!")
}

func (ui *UI) addItem(ctx context.Context, actor string) {
	gameName := ui.readLine("Add an item to which game? ")
	item := ui.readLine("Item name: ")
	price, err := ui.readMoney("Price in coins: ")
	if err != nil {
		ui.printErr(err)
		return
	}
	if err := ui.catalog.AddItem(ctx, actor, gameName, item, price); err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintln(ui.out, "Item added to the store!")
}

func (ui *UI) listPatches(ctx context.Context) {
	gameName := ui.readLine("List patches of which game? ")
	game, err := ui.catalog.GetGame(ctx, gameName)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(game.Patches) == 0 {
		fmt.Fprintln(ui.out, "No patches published.")
		return
	}
	fmt.Fprintf(ui.out, "Patches of %s:\n", game.Name)
	for _, patch := range game.Patches {
		fmt.Fprintf(ui.out, "- v%s: %s\n", patch.Version, patch.Notes)
	}
}

func (ui *UI) addScore(ctx context.Context, actor string) {
	player := ui.readLine("Add points for which user? ")
	gameName := ui.readLine("In which game? ")
	points, err := ui.readInt("How many points? ")
	if err != nil {
		fmt.Fprintln(ui.out, "Invalid point value.")
		return
	}
	total, unlocked, err := ui.catalog.AddScore(ctx, actor, player, gameName, int64(points))
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "%s now has %d points in %s.\n", player, total, gameName)
	for _, achievement := range unlocked {
		fmt.Fprintf(ui.out, "[Achievement] %s unlocked: %s - %s\n", player, achievement.Title, achievement.Description)
	}
	if len(unlocked) == 0 {
		fmt.Fprintln(ui.out, "No new achievements unlocked.")
	}
}

func (ui *UI) listUsers(ctx context.Context, actor string) {
	users, err := ui.catalog.ListUsers(ctx, actor)
	if err != nil {
		ui.printErr(err)
		return
	}
	for _, user := range users {
		fmt.Fprintf(ui.out, "- %s (%s)\n", user.Name, user.Kind)
	}
}

func (ui *UI) publishPatch(ctx context.Context, actor string) {
	gameName := ui.readLine("Publish a patch for which game? ")
	version := ui.readLine("New version (e.g. 1.1.0): ")
	notes := ui.readLine("Patch notes: ")
	if err := ui.catalog.PublishPatch(ctx, actor, gameName, version, notes); err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Patch %s published for %s.\n", version, gameName)
}

func (ui *UI) registerAchievements(ctx context.Context, actor string) {
	gameName := ui.readLine("Register achievements on which game? ")
	count, err := ui.readInt("How many achievements? ")
	if err != nil {
		fmt.Fprintln(ui.out, "Invalid number.")
		return
	}
	for i := 0; i < count; i++ {
		achievement := models.Achievement{
			Code:        ui.readLine("Code (unique): "),
			Title:       ui.readLine("Title: "),
			Description: ui.readLine("Description: "),
		}
		if minPoints, err := ui.readInt("Minimum points to unlock: "); err == nil {
			achievement.MinPoints = int64(minPoints)
		}
		if err := ui.catalog.RegisterAchievement(ctx, actor, gameName, achievement); err != nil {
			ui.printErr(err)
			return
		}
	}
	fmt.Fprintln(ui.out, "Achievements registered.")
}
