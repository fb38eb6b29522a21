package ports

import (
	"context"

	"github.com/catalogadmin/console/internal/core/domain"
)

// AccountRepository persists accounts for the catalog API.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
}
