package services

import (
	"context"

	"marketplace/internal/models"
)

// AccountStore is the account directory the services depend on. The concrete
// implementation lives in internal/store.
type AccountStore interface {
	Create(ctx context.Context, account models.Account) error
	Get(ctx context.Context, name string) (models.Account, error)
	FindByIdentifier(ctx context.Context, identifier string) (models.Account, error)
	Save(ctx context.Context, account models.Account) error
	List(ctx context.Context) ([]models.Account, error)
}

// GameStore is the catalog the services depend on.
type GameStore interface {
	Create(ctx context.Context, game models.Game) error
	Get(ctx context.Context, name string) (models.Game, error)
	Save(ctx context.Context, game models.Game) error
	List(ctx context.Context) ([]models.Game, error)
}
