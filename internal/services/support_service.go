package services

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/models"
	"marketplace/internal/support"
)

// SupportService owns the single resolution chain and the ticket workflow
// on accounts.
type SupportService struct {
	accounts AccountStore
	chain    *support.Chain
}

func NewSupportService(accounts AccountStore, chain *support.Chain) *SupportService {
	return &SupportService{accounts: accounts, chain: chain}
}

// OpenTicket files a new ticket in Open status.
func (s *SupportService) OpenTicket(ctx context.Context, accountName, problem, category string) (models.Ticket, error) {
	if problem == "" {
		return models.Ticket{}, ErrEmptyProblem
	}
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return models.Ticket{}, err
	}
	ticket := models.Ticket{
		ID:       uuid.NewString(),
		Problem:  problem,
		Category: category,
		Status:   models.TicketOpen,
	}
	account.Tickets = append(account.Tickets, ticket)
	if err := s.accounts.Save(ctx, account); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (s *SupportService) Tickets(ctx context.Context, accountName string) ([]models.Ticket, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return nil, err
	}
	return account.Tickets, nil
}

// ProcessPendingTickets routes every open ticket through the chain, in list
// order. Every processed ticket ends in a non-open status.
func (s *SupportService) ProcessPendingTickets(ctx context.Context, accountName string) (int, error) {
	account, err := s.accounts.Get(ctx, accountName)
	if err != nil {
		return 0, err
	}
	resolved := 0
	for i := range account.Tickets {
		if account.Tickets[i].Status != models.TicketOpen {
			continue
		}
		s.chain.Resolve(&account.Tickets[i])
		resolved++
	}
	if resolved == 0 {
		return 0, nil
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return 0, err
	}
	return resolved, nil
}
