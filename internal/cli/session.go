package cli

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"marketplace/internal/models"
)

func (ui *UI) session(ctx context.Context, name string) {
	for {
		account, err := ui.accounts.Get(ctx, name)
		if err != nil {
			ui.printErr(err)
			return
		}
		fmt.Fprintf(ui.out, "\n=== %s | Balance: %s | Platform: %s ===\n",
			account.Name, account.Wallet.Balance(), platformLabel(account.Platform))
		if account.Kind == models.KindAdult {
			fmt.Fprintln(ui.out, "0 - Manage dependents")
		}
		fmt.Fprintln(ui.out, "1 - Game shop")
		fmt.Fprintln(ui.out, "2 - Buy item")
		fmt.Fprintln(ui.out, "3 - Add funds")
		fmt.Fprintln(ui.out, "4 - Catalog and rankings")
		fmt.Fprintln(ui.out, "5 - Preferences")
		fmt.Fprintln(ui.out, "6 - Forum (online games)")
		fmt.Fprintln(ui.out, "7 - Support")
		fmt.Fprintln(ui.out, "8 - Inbox")
		fmt.Fprintln(ui.out, "9 - Preferred platform (PC/Mobile/Console)")
		fmt.Fprintln(ui.out, "10 - Matchmaking")
		fmt.Fprintln(ui.out, "11 - Game updates")
		fmt.Fprintln(ui.out, "12 - My achievements")
		fmt.Fprintln(ui.out, "13 - Logout")
		choice := ui.readLine("> ")
		if ui.eof {
			return
		}
		switch choice {
		case "0":
			if account.Kind == models.KindAdult {
				ui.dependents(ctx, name)
			}
		case "1":
			ui.shop(ctx, name)
		case "2":
			ui.buyItem(ctx, name)
		case "3":
			ui.deposit(ctx, name)
		case "4":
			ui.rankings(ctx)
		case "5":
			ui.preferences(ctx, name)
		case "6":
			ui.forum(ctx, name)
		case "7":
			ui.supportMenu(ctx, name)
		case "8":
			ui.inbox(ctx, name)
		case "9":
			ui.platform(ctx, name)
		case "10":
			ui.matchmakingMenu(ctx, name)
		case "11":
			ui.updates(ctx, name)
		case "12":
			ui.achievements(ctx, name)
		case "13":
			return
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
	}
}

func (ui *UI) shop(ctx context.Context, name string) {
	available, err := ui.purchases.ShopListing(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(available) == 0 {
		fmt.Fprintln(ui.out, "No compatible games available, or you own them all.")
		return
	}
	fmt.Fprintln(ui.out, "\nGames for sale:")
	for _, game := range available {
		fmt.Fprintf(ui.out, "- %s | Price: %s | Platforms: %s | v%s\n",
			game.Name, game.Price, sortedPlatforms(game), game.Version)
	}
	target := ui.readLine("Game to buy (enter to go back): ")
	if target == "" {
		return
	}
	account, err := ui.purchases.PurchaseGame(ctx, name, target)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Bought %q! Balance: %s\n", target, account.Wallet.Balance())
}

func (ui *UI) buyItem(ctx context.Context, name string) {
	account, err := ui.accounts.Get(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(account.Library) == 0 {
		fmt.Fprintln(ui.out, "You do not own any games yet.")
		return
	}
	owned := maps.Keys(account.Library)
	slices.Sort(owned)
	fmt.Fprintln(ui.out, "\nYour library:")
	for _, gameName := range owned {
		fmt.Fprintf(ui.out, "- %s\n", gameName)
	}
	gameName := ui.readLine("Buy an item from which game? ")
	game, err := ui.catalog.GetGame(ctx, gameName)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(game.Items) == 0 {
		fmt.Fprintln(ui.out, "This game has no items for sale.")
		return
	}
	items := maps.Keys(game.Items)
	slices.Sort(items)
	fmt.Fprintln(ui.out, "Items:")
	for _, item := range items {
		fmt.Fprintf(ui.out, "- %s: %s\n", item, game.Items[item])
	}
	item := ui.readLine("Which item? ")
	balance, err := ui.purchases.PurchaseItem(ctx, name, gameName, item)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Bought %q! New balance: %s\n", item, balance)
}

func (ui *UI) deposit(ctx context.Context, name string) {
	amount, err := ui.readMoney("Amount to add (e.g. 100.50): ")
	if err != nil {
		ui.printErr(err)
		return
	}
	balance, err := ui.purchases.Deposit(ctx, name, amount)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Funds added. Balance: %s\n", balance)
}

func (ui *UI) rankings(ctx context.Context) {
	games, err := ui.catalog.ListGames(ctx)
	if err != nil {
		ui.printErr(err)
		return
	}
	for _, game := range games {
		fmt.Fprintf(ui.out, "\n%s (v%s)\n", game.Name, game.Version)
		entries, err := ui.catalog.Ranking(ctx, game.Name)
		if err != nil {
			ui.printErr(err)
			continue
		}
		if len(entries) == 0 {
			fmt.Fprintln(ui.out, "  Nobody has scored in this game yet.")
			continue
		}
		for i, entry := range entries {
			fmt.Fprintf(ui.out, "  %d. %s - %d points\n", i+1, entry.Player, entry.Points)
		}
	}
}

func (ui *UI) preferences(ctx context.Context, name string) {
	raw := ui.readLine("Preferences, comma separated (e.g. RPG, Adventure): ")
	preferences, err := ui.accounts.UpdatePreferences(ctx, name, raw)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Preferences updated: %v\n", preferences)
}

func (ui *UI) forum(ctx context.Context, name string) {
	gameName := ui.readLine("Forum of which game? ")
	posts, err := ui.catalog.ForumPosts(ctx, name, gameName)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "\n--- %s forum ---\n", gameName)
	if len(posts) == 0 {
		fmt.Fprintln(ui.out, "The forum is empty.")
	}
	for _, post := range posts {
		fmt.Fprintf(ui.out, "[%s]: %s\n", post.Author, post.Message)
	}
	if ui.readLine("Post a message? (y/n) ") != "y" {
		return
	}
	message := ui.readLine("Your message: ")
	if err := ui.catalog.PostToForum(ctx, name, gameName, message); err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintln(ui.out, "Message posted!")
}

func (ui *UI) supportMenu(ctx context.Context, name string) {
	fmt.Fprintln(ui.out, "\n--- Support center ---")
	fmt.Fprintln(ui.out, "1 - Open a ticket")
	fmt.Fprintln(ui.out, "2 - My tickets")
	fmt.Fprintln(ui.out, "3 - Process my open tickets")
	switch ui.readLine("> ") {
	case "1":
		problem := ui.readLine("Describe your problem: ")
		category := ui.readLine("Category (login/signup/password/payment/installation/other): ")
		if _, err := ui.support.OpenTicket(ctx, name, problem, category); err != nil {
			ui.printErr(err)
			return
		}
		fmt.Fprintln(ui.out, "Ticket opened!")
	case "2":
		tickets, err := ui.support.Tickets(ctx, name)
		if err != nil {
			ui.printErr(err)
			return
		}
		if len(tickets) == 0 {
			fmt.Fprintln(ui.out, "You have no tickets.")
		}
		for i, ticket := range tickets {
			fmt.Fprintf(ui.out, "%d. [%s] %s | Status: %s\n", i+1, ticket.Category, ticket.Problem, ticket.Status)
		}
	case "3":
		resolved, err := ui.support.ProcessPendingTickets(ctx, name)
		if err != nil {
			ui.printErr(err)
			return
		}
		if resolved == 0 {
			fmt.Fprintln(ui.out, "No open tickets to process.")
			return
		}
		fmt.Fprintf(ui.out, "%d ticket(s) processed by the support team. Check 'My tickets' for the outcome.\n", resolved)
	}
}

func (ui *UI) inbox(ctx context.Context, name string) {
	messages, err := ui.accounts.Inbox(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintln(ui.out, "\n--- Inbox ---")
	if len(messages) == 0 {
		fmt.Fprintln(ui.out, "No messages.")
	}
	for _, message := range messages {
		fmt.Fprintf(ui.out, "- %s\n", message)
	}
}

func (ui *UI) platform(ctx context.Context, name string) {
	platform := ui.readLine("Preferred platform (PC/Mobile/Console), empty to clear: ")
	if err := ui.accounts.SetPlatformPreference(ctx, name, platform); err != nil {
		ui.printErr(err)
		return
	}
	if platform == "" {
		fmt.Fprintln(ui.out, "Platform preference cleared.")
		return
	}
	fmt.Fprintf(ui.out, "Preferred platform: %s\n", platform)
}

func (ui *UI) matchmakingMenu(ctx context.Context, name string) {
	fmt.Fprintln(ui.out, "\n--- Matchmaking ---")
	fmt.Fprintln(ui.out, "1 - Join queue")
	fmt.Fprintln(ui.out, "2 - Try to form a match")
	switch ui.readLine("> ") {
	case "1":
		gameName := ui.readLine("Queue for which game? ")
		waiting, err := ui.matchmaking.Join(ctx, name, gameName)
		if err != nil {
			ui.printErr(err)
			return
		}
		fmt.Fprintf(ui.out, "%s joined the %s queue (%d waiting).\n", name, gameName, waiting)
	case "2":
		gameName := ui.readLine("Form a match for which game? ")
		match, ok, err := ui.matchmaking.TryMatch(ctx, gameName)
		if err != nil {
			ui.printErr(err)
			return
		}
		if !ok {
			fmt.Fprintf(ui.out, "Waiting for more players (%d/%d).\n",
				ui.matchmaking.Queued(gameName), ui.matchmaking.MatchSize())
			return
		}
		fmt.Fprintf(ui.out, "Match started in %s with players: %v\n", match.Game, match.Players)
	}
}

func (ui *UI) updates(ctx context.Context, name string) {
	account, err := ui.accounts.Get(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(account.Library) == 0 {
		fmt.Fprintln(ui.out, "You do not own any games.")
		return
	}
	owned := maps.Keys(account.Library)
	slices.Sort(owned)
	for _, gameName := range owned {
		game, err := ui.catalog.GetGame(ctx, gameName)
		if err != nil {
			continue
		}
		fmt.Fprintf(ui.out, "- %s: installed v%s | current v%s\n", gameName, account.Library[gameName].InstalledVersion, game.Version)
	}
	target := ui.readLine("Update which game? (enter to cancel) ")
	if target == "" {
		return
	}
	updated, version, err := ui.purchases.ApplyPatch(ctx, name, target)
	if err != nil {
		ui.printErr(err)
		return
	}
	if !updated {
		fmt.Fprintf(ui.out, "%s is already up to date (v%s).\n", target, version)
		return
	}
	fmt.Fprintf(ui.out, "%s updated to v%s.\n", target, version)
}

func (ui *UI) achievements(ctx context.Context, name string) {
	account, err := ui.accounts.Get(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(account.Library) == 0 {
		fmt.Fprintln(ui.out, "You do not own any games.")
		return
	}
	owned := maps.Keys(account.Library)
	slices.Sort(owned)
	for _, gameName := range owned {
		game, err := ui.catalog.GetGame(ctx, gameName)
		if err != nil {
			continue
		}
		fmt.Fprintf(ui.out, "\nAchievements in %s:\n", gameName)
		if len(game.Achievements) == 0 {
			fmt.Fprintln(ui.out, "  This game has no achievements registered.")
			continue
		}
		unlocked := account.Unlocked[gameName]
		codes := maps.Keys(game.Achievements)
		slices.Sort(codes)
		for _, code := range codes {
			achievement := game.Achievements[code]
			marker := " "
			if unlocked[code] {
				marker = "x"
			}
			fmt.Fprintf(ui.out, "  [%s] %s (min %d) - %s\n", marker, achievement.Title, achievement.MinPoints, achievement.Description)
		}
	}
}

func (ui *UI) dependents(ctx context.Context, name string) {
	pending, err := ui.accounts.PendingDependents(ctx, name)
	if err != nil {
		ui.printErr(err)
		return
	}
	if len(pending) == 0 {
		fmt.Fprintln(ui.out, "No accounts pending approval.")
		return
	}
	fmt.Fprintln(ui.out, "Accounts pending approval:")
	for i, dependent := range pending {
		fmt.Fprintf(ui.out, "%d - %s (age %d)\n", i+1, dependent.Name, dependent.Age)
	}
	choice, err := ui.readInt("Number of the account to approve (0 to cancel): ")
	if err != nil || choice <= 0 || choice > len(pending) {
		return
	}
	dependent := pending[choice-1]
	canBuyItems := ui.readLine("Allow this user to buy in-game ITEMS? (y/n): ") == "y"
	canBuyGames := ui.readLine("Allow this user to buy GAMES from the shop? (y/n): ") == "y"
	if err := ui.accounts.ApproveDependent(ctx, name, dependent.Name, canBuyItems, canBuyGames); err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "Account %s approved, permissions saved.\n", dependent.Name)
}
