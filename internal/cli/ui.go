package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"marketplace/internal/models"
	"marketplace/internal/money"
	"marketplace/internal/services"
)

// UI drives the text-menu front end. All reads come from a single buffered
// reader and all output goes to the writer, so the whole flow is scriptable
// in tests.
type UI struct {
	in  *bufio.Reader
	out io.Writer
	// eof is set once the input is exhausted; menu loops treat it as a
	// request to leave.
	eof bool

	accounts    *services.AccountService
	purchases   *services.PurchaseService
	catalog     *services.CatalogService
	support     *services.SupportService
	matchmaking *services.MatchmakingService
}

func New(
	in *bufio.Reader,
	out io.Writer,
	accounts *services.AccountService,
	purchases *services.PurchaseService,
	catalog *services.CatalogService,
	support *services.SupportService,
	matchmaking *services.MatchmakingService,
) *UI {
	return &UI{
		in:          in,
		out:         out,
		accounts:    accounts,
		purchases:   purchases,
		catalog:     catalog,
		support:     support,
		matchmaking: matchmaking,
	}
}

func (ui *UI) Run(ctx context.Context) {
	for {
		fmt.Fprintln(ui.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(ui.out, "1 - Login")
		fmt.Fprintln(ui.out, "2 - Create account")
		fmt.Fprintln(ui.out, "3 - Exit")
		choice := ui.readLine("> ")
		if ui.eof {
			fmt.Fprintln(ui.out, "Thanks for playing, bye!")
			return
		}
		switch choice {
		case "1":
			ui.login(ctx)
		case "2":
			ui.register(ctx)
		case "3":
			fmt.Fprintln(ui.out, "Thanks for playing, bye!")
			return
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
	}
}

func (ui *UI) login(ctx context.Context) {
	identifier := ui.readLine("Name or email: ")
	password := ui.readLine("Password: ")
	account, err := ui.accounts.Authenticate(ctx, identifier, password)
	if err != nil {
		ui.printErr(err)
		return
	}
	fmt.Fprintf(ui.out, "\nWelcome, %s!\n", account.Name)
	if account.Kind == models.KindAdmin {
		ui.adminMenu(ctx, account.Name)
		return
	}
	if account.Kind == models.KindChild && account.Approval == models.ApprovalPending {
		fmt.Fprintln(ui.out, "Your account is pending approval. Ask your guardian to approve it.")
		return
	}
	ui.session(ctx, account.Name)
}

func (ui *UI) register(ctx context.Context) {
	req := services.RegisterRequest{
		Name:  ui.readLine("Name: "),
		Email: ui.readLine("Email: "),
	}
	age, err := ui.readInt("Age: ")
	if err != nil {
		fmt.Fprintln(ui.out, "Invalid age.")
		return
	}
	req.Age = age
	req.Password = ui.readLine("Password: ")
	if age < 18 {
		req.GuardianEmail = ui.readLine("You are a minor; enter the email of a registered adult guardian: ")
	}
	account, err := ui.accounts.Register(ctx, req)
	if err != nil {
		ui.printErr(err)
		return
	}
	if account.Kind == models.KindChild {
		fmt.Fprintln(ui.out, "Account created! Ask your guardian to check their inbox and approve it.")
		return
	}
	fmt.Fprintln(ui.out, "Account created successfully!")
}

func (ui *UI) readLine(prompt string) string {
	fmt.Fprint(ui.out, prompt)
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		ui.eof = true
	}
	return strings.TrimSpace(line)
}

func (ui *UI) readInt(prompt string) (int, error) {
	return strconv.Atoi(ui.readLine(prompt))
}

func (ui *UI) readMoney(prompt string) (money.Money, error) {
	return money.Parse(ui.readLine(prompt))
}

func (ui *UI) printErr(err error) {
	switch services.Classify(err) {
	case services.KindValidation:
		fmt.Fprintln(ui.out, "Invalid input:", err)
	case services.KindNotFound:
		fmt.Fprintln(ui.out, "Not found:", err)
	case services.KindBusinessRule:
		fmt.Fprintln(ui.out, "Not allowed:", err)
	default:
		fmt.Fprintln(ui.out, "Error:", err)
	}
}

func platformLabel(platform models.Platform) string {
	if platform == "" {
		return "-"
	}
	return string(platform)
}

func sortedPlatforms(game models.Game) string {
	var names []string
	for _, platform := range []models.Platform{models.PlatformPC, models.PlatformMobile, models.PlatformConsole} {
		if game.Platforms[platform] {
			names = append(names, string(platform))
		}
	}
	return strings.Join(names, ", ")
}
