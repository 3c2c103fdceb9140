package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"marketplace/internal/models"
	"marketplace/internal/money"
	"marketplace/internal/services"
	"marketplace/internal/store"
	"marketplace/internal/support"
)

func newTestUI(script string) (*UI, *bytes.Buffer) {
	return newTestUIWith(store.NewAccountStore(), store.NewGameStore(), script)
}

func newTestUIWith(accounts *store.AccountStore, games *store.GameStore, script string) (*UI, *bytes.Buffer) {
	accountSvc := services.NewAccountService(accounts)
	purchaseSvc := services.NewPurchaseService(accounts, games)
	var out bytes.Buffer
	ui := New(
		bufio.NewReader(strings.NewReader(script)),
		&out,
		accountSvc,
		purchaseSvc,
		services.NewCatalogService(accounts, games, purchaseSvc),
		services.NewSupportService(accounts, support.NewChain()),
		services.NewMatchmakingService(accounts, games, 2),
	)
	return ui, &out
}

func TestRunRegisterLoginLogout(t *testing.T) {
	script := strings.Join([]string{
		"2",                // create account
		"alex",             // name
		"alex@example.com", // email
		"30",               // age
		"alex123",          // password
		"1",                // login
		"alex",
		"alex123",
		"13", // logout
		"3",  // exit
	}, "\n") + "\n"

	ui, out := newTestUI(script)
	ui.Run(context.Background())

	got := out.String()
	for _, want := range []string{
		"Account created successfully!",
		"Welcome, alex!",
		"Thanks for playing, bye!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunRejectsBadLogin(t *testing.T) {
	script := "1\nghost\nwrong\n3\n"
	ui, out := newTestUI(script)
	ui.Run(context.Background())

	if !strings.Contains(out.String(), "Not allowed:") {
		t.Fatalf("expected a credentials failure, got:\n%s", out.String())
	}
}

func TestRunRejectsUnknownOption(t *testing.T) {
	script := "9\n3\n"
	ui, out := newTestUI(script)
	ui.Run(context.Background())

	if !strings.Contains(out.String(), "Invalid option.") {
		t.Fatalf("expected invalid option notice, got:\n%s", out.String())
	}
}

func TestRunExitsWhenInputEnds(t *testing.T) {
	// The script never picks the exit option; exhausted input must end the
	// program instead of looping on empty reads.
	ui, out := newTestUI("1\n")

	done := make(chan struct{})
	go func() {
		ui.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after input was exhausted")
	}
	if !strings.Contains(out.String(), "Thanks for playing, bye!") {
		t.Fatalf("expected farewell on end of input, got:\n%s", out.String())
	}
}

func TestRunProcessesSupportTickets(t *testing.T) {
	script := strings.Join([]string{
		"2",                // create account
		"alex",
		"alex@example.com",
		"30",
		"alex123",
		"1", // login
		"alex",
		"alex123",
		"7", "1", "cannot sign in", "login", // open a ticket
		"7", "3", // process open tickets
		"7", "2", // list tickets
		"13", // logout
		"3",  // exit
	}, "\n") + "\n"

	ui, out := newTestUI(script)
	ui.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "1 ticket(s) processed") {
		t.Fatalf("processing notice missing:\n%s", got)
	}
	if !strings.Contains(got, "Status: "+string(models.TicketResolvedBasic)) {
		t.Fatalf("ticket not resolved by the chain:\n%s", got)
	}
	if strings.Contains(got, "Status: "+string(models.TicketOpen)) {
		t.Fatalf("an open ticket survived processing:\n%s", got)
	}
}

func TestBuyItemListingsAreSorted(t *testing.T) {
	accounts := store.NewAccountStore()
	games := store.NewGameStore()
	ctx := context.Background()
	if err := games.Create(ctx, models.Game{
		ID:        "raiders-id",
		Name:      "Poly_Raiders",
		Kind:      models.GameOnline,
		Platforms: map[models.Platform]bool{models.PlatformPC: true},
		Version:   "1.0.0",
		Items: map[string]money.Money{
			"Charm": money.FromMajor(3),
			"Armor": money.FromMajor(1),
			"Boots": money.FromMajor(2),
		},
	}); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	if err := accounts.Create(ctx, models.Account{
		ID:       "alex-id",
		Name:     "alex",
		Email:    "alex@example.com",
		Password: "alex123",
		Age:      30,
		Kind:     models.KindAdult,
		Library: map[string]models.OwnedGame{
			"Zephyr_Quest": {InstalledVersion: "1.0.0"},
			"Poly_Raiders": {InstalledVersion: "1.0.0"},
			"Aurora_Drift": {InstalledVersion: "1.0.0"},
		},
		Unlocked: make(map[string]map[string]bool),
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	script := strings.Join([]string{
		"1", "alex", "alex123",
		"2",            // buy item
		"Poly_Raiders", // from this game
		"Armor",        // wallet is empty, the attempt fails after listing
		"13",
		"3",
	}, "\n") + "\n"
	ui, out := newTestUIWith(accounts, games, script)
	ui.Run(context.Background())

	got := out.String()
	library := []string{"- Aurora_Drift", "- Poly_Raiders", "- Zephyr_Quest"}
	for i := 1; i < len(library); i++ {
		before, after := strings.Index(got, library[i-1]), strings.Index(got, library[i])
		if before == -1 || after == -1 || before > after {
			t.Fatalf("library not listed in name order:\n%s", got)
		}
	}
	items := []string{"- Armor:", "- Boots:", "- Charm:"}
	for i := 1; i < len(items); i++ {
		before, after := strings.Index(got, items[i-1]), strings.Index(got, items[i])
		if before == -1 || after == -1 || before > after {
			t.Fatalf("items not listed in name order:\n%s", got)
		}
	}
}
