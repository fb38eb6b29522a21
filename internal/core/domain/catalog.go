package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Reference errors returned by the catalog API when a create call points
// at an entity that does not exist. The messages are shown to the user verbatim.
var (
	ErrUnknownCategory = errors.New("no such category")
	ErrUnknownProduct  = errors.New("no such product")
	ErrUnknownOrder    = errors.New("no such order")
	ErrUnknownUser     = errors.New("no such user")
)

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// Entity is anything a list refresh can render.
type Entity interface {
	EntityID() int64
	Summary() string
}

type Category struct {
	ID   int64  `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
}

func (c Category) EntityID() int64 { return c.ID }

func (c Category) Summary() string {
	return fmt.Sprintf("ID: %d, Name: %s", c.ID, c.Name)
}

// CategoryRef is the category embedded in a product listing. A product is
// displayable as long as its category carries a name.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

type Product struct {
	ID         int64       `json:"id"          validate:"required"`
	Name       string      `json:"name"        validate:"required"`
	Price      float64     `json:"price"       validate:"required"`
	CategoryID int64       `json:"category_id"`
	Category   CategoryRef `json:"category"`
}

func (p Product) EntityID() int64 { return p.ID }

func (p Product) Summary() string {
	return fmt.Sprintf("ID: %d, Name: %s, Price: %s $, Category: %s",
		p.ID, p.Name, FormatPrice(p.Price), p.Category.Name)
}

type Order struct {
	ID     int64       `json:"id"      validate:"required"`
	UserID int64       `json:"user_id"`
	User   UserRef     `json:"user"`
	Status string      `json:"status"  validate:"required"`
	Items  []OrderItem `json:"items"   validate:"-"`
}

func (o Order) EntityID() int64 { return o.ID }

func (o Order) Summary() string {
	s := fmt.Sprintf("ID: %d, User: %s, Status: %s", o.ID, o.User.Username, o.Status)
	if n := len(o.Items); n > 0 {
		s += fmt.Sprintf(", Items: %d", n)
	}
	return s
}

// OrderItem is a line item. The console only ever writes these.
type OrderItem struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Page is the skip/limit window the catalog API applies to list calls.
type Page struct {
	Skip  int
	Limit int
}

const DefaultPageLimit = 100

// Window returns the [lo, hi) bounds of the page over n items.
func (p Page) Window(n int) (int, int) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	lo := p.Skip
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	hi := lo + limit
	if hi > n {
		hi = n
	}
	return lo, hi
}

// FormatPrice renders a price without trailing zeros, e.g. 9.99 or 10.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
