package support

import (
	"strings"

	"marketplace/internal/models"
)

// Handler is one step in the resolution chain: a predicate and the action
// applied when it matches.
type Handler struct {
	Name    string
	Matches func(models.Ticket) bool
	Resolve func(*models.Ticket)
}

// Chain walks its handlers in order and lets the first match resolve the
// ticket. The last handler matches everything, so resolution is total.
type Chain struct {
	handlers []Handler
}

// NewChain builds the fixed routing: basic account categories first,
// advanced billing/installation next, catch-all review last. The order is
// most-specific-first and must not be rearranged.
func NewChain() *Chain {
	return &Chain{handlers: []Handler{
		{
			Name:    "basic",
			Matches: categoryIn("login", "signup", "password"),
			Resolve: setStatus(models.TicketResolvedBasic),
		},
		{
			Name:    "advanced",
			Matches: categoryIn("payment", "installation"),
			Resolve: setStatus(models.TicketResolvedAdvanced),
		},
		{
			Name:    "review",
			Matches: func(models.Ticket) bool { return true },
			Resolve: setStatus(models.TicketUnderReview),
		},
	}}
}

// Resolve routes the ticket to the first matching handler. It never leaves
// the ticket open.
func (c *Chain) Resolve(ticket *models.Ticket) {
	for _, handler := range c.handlers {
		if handler.Matches(*ticket) {
			handler.Resolve(ticket)
			return
		}
	}
}

func categoryIn(categories ...string) func(models.Ticket) bool {
	set := make(map[string]bool, len(categories))
	for _, category := range categories {
		set[category] = true
	}
	return func(ticket models.Ticket) bool {
		return set[strings.ToLower(strings.TrimSpace(ticket.Category))]
	}
}

func setStatus(status models.TicketStatus) func(*models.Ticket) {
	return func(ticket *models.Ticket) { ticket.Status = status }
}
