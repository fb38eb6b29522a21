package ports

import (
	"context"

	"github.com/catalogadmin/console/internal/core/domain"
)

// CatalogRepository stores the catalog API's collections. Create calls
// return the reference errors from the domain package (domain.ErrUnknownUser,
// ...) when a referenced entity does not exist.
type CatalogRepository interface {
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error)

	CreateCategory(ctx context.Context, in domain.CategoryPayload) (domain.Category, error)
	ListCategories(ctx context.Context, page domain.Page) ([]domain.Category, error)

	CreateProduct(ctx context.Context, in domain.ProductPayload) (domain.Product, error)
	ListProducts(ctx context.Context, page domain.Page) ([]domain.Product, error)

	CreateOrder(ctx context.Context, in domain.OrderPayload) (domain.Order, error)
	ListOrders(ctx context.Context, page domain.Page) ([]domain.Order, error)

	AddOrderItem(ctx context.Context, in domain.OrderItemPayload) (domain.OrderItem, error)
}
