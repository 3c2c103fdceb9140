package models

import (
	"time"

	"marketplace/internal/ledger"
	"marketplace/internal/money"
)

type AccountKind string

const (
	KindAdult AccountKind = "adult"
	KindChild AccountKind = "child"
	KindAdmin AccountKind = "admin"
)

type Platform string

const (
	PlatformPC      Platform = "PC"
	PlatformMobile  Platform = "Mobile"
	PlatformConsole Platform = "Console"
)

// AllowedPlatforms is the fixed set a platform preference may take.
var AllowedPlatforms = map[Platform]bool{
	PlatformPC:      true,
	PlatformMobile:  true,
	PlatformConsole: true,
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
)

type TicketStatus string

const (
	TicketOpen             TicketStatus = "open"
	TicketResolvedBasic    TicketStatus = "resolved_basic"
	TicketResolvedAdvanced TicketStatus = "resolved_advanced"
	TicketUnderReview      TicketStatus = "under_review"
)

type Ticket struct {
	ID       string
	Problem  string
	Category string
	Status   TicketStatus
}

// OwnedGame records a library entry. InstalledVersion is fixed at purchase
// time and only moves forward through an explicit patch apply.
type OwnedGame struct {
	InstalledVersion string
}

type Account struct {
	ID       string
	Name     string
	Email    string
	Password string
	Age      int
	Kind     AccountKind
	Wallet   ledger.Ledger

	// Platform is empty when no preference is set.
	Platform    Platform
	Preferences []string
	Library     map[string]OwnedGame
	Tickets     []Ticket
	Inbox       []string
	// Unlocked maps game name to the set of unlocked achievement codes.
	Unlocked map[string]map[string]bool

	// Child accounts only.
	GuardianEmail string
	Approval      ApprovalStatus
	CanBuyItems   bool
	CanBuyGames   bool

	CreatedAt time.Time
}

// Clone returns a deep copy so callers can never mutate stored state through
// a read result.
func (a Account) Clone() Account {
	out := a
	out.Preferences = append([]string(nil), a.Preferences...)
	out.Tickets = append([]Ticket(nil), a.Tickets...)
	out.Inbox = append([]string(nil), a.Inbox...)
	if a.Library != nil {
		out.Library = make(map[string]OwnedGame, len(a.Library))
		for name, owned := range a.Library {
			out.Library[name] = owned
		}
	}
	if a.Unlocked != nil {
		out.Unlocked = make(map[string]map[string]bool, len(a.Unlocked))
		for game, codes := range a.Unlocked {
			copied := make(map[string]bool, len(codes))
			for code := range codes {
				copied[code] = true
			}
			out.Unlocked[game] = copied
		}
	}
	return out
}

type GameKind string

const (
	GameOnline  GameKind = "online"
	GameOffline GameKind = "offline"
)

type Patch struct {
	Version string
	Notes   string
}

type Achievement struct {
	Code        string
	Title       string
	Description string
	MinPoints   int64
}

type ForumPost struct {
	Author  string
	Message string
}

type Game struct {
	ID        string
	Name      string
	Kind      GameKind
	Price     money.Money
	Platforms map[Platform]bool
	Version   string
	Patches   []Patch
	// Items maps a store item name to its price. Item purchases are
	// consumable; no inventory is kept.
	Items        map[string]money.Money
	Achievements map[string]Achievement
	// Scores maps a player name to accumulated points.
	Scores map[string]int64
	// Forum is only used by online games.
	Forum     []ForumPost
	CreatedAt time.Time
}

func (g Game) Clone() Game {
	out := g
	out.Patches = append([]Patch(nil), g.Patches...)
	out.Forum = append([]ForumPost(nil), g.Forum...)
	if g.Platforms != nil {
		out.Platforms = make(map[Platform]bool, len(g.Platforms))
		for platform := range g.Platforms {
			out.Platforms[platform] = true
		}
	}
	if g.Items != nil {
		out.Items = make(map[string]money.Money, len(g.Items))
		for name, price := range g.Items {
			out.Items[name] = price
		}
	}
	if g.Achievements != nil {
		out.Achievements = make(map[string]Achievement, len(g.Achievements))
		for code, achievement := range g.Achievements {
			out.Achievements[code] = achievement
		}
	}
	if g.Scores != nil {
		out.Scores = make(map[string]int64, len(g.Scores))
		for player, points := range g.Scores {
			out.Scores[player] = points
		}
	}
	return out
}

type Match struct {
	ID      string
	Game    string
	Players []string
}
