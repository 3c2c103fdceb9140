package ledger

import (
	"errors"

	"marketplace/internal/money"
)

var (
	ErrInvalidAmount     = errors.New("credit amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ledger holds the coin balance of a single account. The zero value is an
// empty ledger. The balance never goes negative.
type Ledger struct {
	balance money.Money
}

func New(balance money.Money) Ledger {
	return Ledger{balance: balance}
}

func (l *Ledger) Credit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	l.balance = l.balance.Add(amount)
	return nil
}

func (l *Ledger) Debit(amount money.Money) error {
	if l.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// Balance returns a copy of the current balance; the internal value cannot
// be reached through it.
func (l Ledger) Balance() money.Money {
	return l.balance
}
