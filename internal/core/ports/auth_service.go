package ports

import (
	"context"

	"github.com/catalogadmin/console/internal/core/domain"
)

// AccountService registers users and issues bearer tokens for the catalog API.
type AccountService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
