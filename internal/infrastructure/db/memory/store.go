// Package memory keeps the catalog API's accounts and collections in process
// memory. Everything is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
)

// Store implements ports.AccountRepository and ports.CatalogRepository.
// IDs start at 1 per collection and are never reused.
type Store struct {
	mu sync.RWMutex

	accounts   []domain.Account
	byUsername map[string]int
	categories []domain.Category
	products   []domain.Product
	orders     []domain.Order
	items      map[int64][]domain.OrderItem
	nextItemID int64
}

var (
	_ ports.AccountRepository = (*Store)(nil)
	_ ports.CatalogRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		byUsername: make(map[string]int),
		items:      make(map[int64][]domain.OrderItem),
	}
}

func (s *Store) CreateAccount(_ context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[account.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := *account
	created.ID = int64(len(s.accounts) + 1)
	s.byUsername[created.Username] = len(s.accounts)
	s.accounts = append(s.accounts, created)
	return &created, nil
}

func (s *Store) FindAccountByUsername(_ context.Context, username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := s.accounts[i]
	return &found, nil
}

func (s *Store) ListUsers(_ context.Context, page domain.Page) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := page.Window(len(s.accounts))
	users := make([]domain.User, 0, hi-lo)
	for _, a := range s.accounts[lo:hi] {
		users = append(users, a.Public())
	}
	return users, nil
}

func (s *Store) CreateCategory(_ context.Context, in domain.CategoryPayload) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Category{ID: int64(len(s.categories) + 1), Name: in.Name}
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) ListCategories(_ context.Context, page domain.Page) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := page.Window(len(s.categories))
	return append([]domain.Category(nil), s.categories[lo:hi]...), nil
}

func (s *Store) CreateProduct(_ context.Context, in domain.ProductPayload) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := lookup(s.categories, in.CategoryID)
	if !ok {
		return domain.Product{}, domain.ErrUnknownCategory
	}
	p := domain.Product{
		ID:         int64(len(s.products) + 1),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: category.ID,
		Category:   domain.CategoryRef{ID: category.ID, Name: category.Name},
	}
	s.products = append(s.products, p)
	return p, nil
}

func (s *Store) ListProducts(_ context.Context, page domain.Page) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := page.Window(len(s.products))
	return append([]domain.Product(nil), s.products[lo:hi]...), nil
}

func (s *Store) CreateOrder(_ context.Context, in domain.OrderPayload) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.UserID < 1 || in.UserID > int64(len(s.accounts)) {
		return domain.Order{}, domain.ErrUnknownUser
	}
	user := s.accounts[in.UserID-1]
	status := in.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	o := domain.Order{
		ID:     int64(len(s.orders) + 1),
		UserID: user.ID,
		User:   domain.UserRef{ID: user.ID, Username: user.Username},
		Status: status,
	}
	s.orders = append(s.orders, o)
	o.Items = []domain.OrderItem{}
	return o, nil
}

func (s *Store) ListOrders(_ context.Context, page domain.Page) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := page.Window(len(s.orders))
	orders := make([]domain.Order, 0, hi-lo)
	for _, o := range s.orders[lo:hi] {
		o.Items = append([]domain.OrderItem{}, s.items[o.ID]...)
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *Store) AddOrderItem(_ context.Context, in domain.OrderItemPayload) (domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := lookup(s.orders, in.OrderID); !ok {
		return domain.OrderItem{}, domain.ErrUnknownOrder
	}
	if _, ok := lookup(s.products, in.ProductID); !ok {
		return domain.OrderItem{}, domain.ErrUnknownProduct
	}
	s.nextItemID++
	item := domain.OrderItem{
		ID:        s.nextItemID,
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	s.items[in.OrderID] = append(s.items[in.OrderID], item)
	return item, nil
}

// lookup finds id in a collection whose IDs equal position+1.
func lookup[T domain.Entity](all []T, id int64) (T, bool) {
	var zero T
	if id < 1 || id > int64(len(all)) {
		return zero, false
	}
	return all[id-1], true
}
