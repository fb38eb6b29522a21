package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalogadmin/console/internal/core/domain"
)

type stubCatalogRepo struct {
	listCategoriesFn func(ctx context.Context, page domain.Page) ([]domain.Category, error)
	createOrderFn    func(ctx context.Context, in domain.OrderPayload) (domain.Order, error)
	addOrderItemFn   func(ctx context.Context, in domain.OrderItemPayload) (domain.OrderItem, error)
}

func (s *stubCatalogRepo) ListUsers(context.Context, domain.Page) ([]domain.User, error) {
	return nil, nil
}

func (s *stubCatalogRepo) CreateCategory(_ context.Context, in domain.CategoryPayload) (domain.Category, error) {
	return domain.Category{ID: 1, Name: in.Name}, nil
}

func (s *stubCatalogRepo) ListCategories(ctx context.Context, page domain.Page) ([]domain.Category, error) {
	return s.listCategoriesFn(ctx, page)
}

func (s *stubCatalogRepo) CreateProduct(context.Context, domain.ProductPayload) (domain.Product, error) {
	return domain.Product{}, nil
}

func (s *stubCatalogRepo) ListProducts(context.Context, domain.Page) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubCatalogRepo) CreateOrder(ctx context.Context, in domain.OrderPayload) (domain.Order, error) {
	return s.createOrderFn(ctx, in)
}

func (s *stubCatalogRepo) ListOrders(context.Context, domain.Page) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubCatalogRepo) AddOrderItem(ctx context.Context, in domain.OrderItemPayload) (domain.OrderItem, error) {
	return s.addOrderItemFn(ctx, in)
}

func TestCatalogHandler_ListCategories_Paging(t *testing.T) {
	e := newEcho()
	var got domain.Page
	handler := NewCatalogHandler(&stubCatalogRepo{
		listCategoriesFn: func(ctx context.Context, page domain.Page) ([]domain.Category, error) {
			got = page
			return []domain.Category{{ID: 1, Name: "Tools"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/categories/?skip=5&limit=10", nil)
	rec := httptest.NewRecorder()
	if err := handler.ListCategories(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != (domain.Page{Skip: 5, Limit: 10}) {
		t.Fatalf("unexpected page: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/categories/", nil)
	rec = httptest.NewRecorder()
	if err := handler.ListCategories(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != (domain.Page{Skip: 0, Limit: domain.DefaultPageLimit}) {
		t.Fatalf("unexpected default page: %+v", got)
	}
	var body []domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || len(body) != 1 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/categories/?skip=abc", nil)
	rec = httptest.NewRecorder()
	if code := statusOf(t, handler.ListCategories(e.NewContext(req, rec))); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestCatalogHandler_CreateOrder_ForcesPending(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(&stubCatalogRepo{
		createOrderFn: func(ctx context.Context, in domain.OrderPayload) (domain.Order, error) {
			if in.Status != domain.OrderStatusPending {
				t.Fatalf("expected pending status, got %q", in.Status)
			}
			return domain.Order{ID: 1, UserID: in.UserID, Status: in.Status}, nil
		},
	})

	c, rec := jsonContext(e, http.MethodPost, "/orders/", `{"user_id":3,"status":"shipped"}`)
	if err := handler.CreateOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_CreateOrder_UnknownUser(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(&stubCatalogRepo{
		createOrderFn: func(ctx context.Context, in domain.OrderPayload) (domain.Order, error) {
			return domain.Order{}, domain.ErrUnknownUser
		},
	})

	c, _ := jsonContext(e, http.MethodPost, "/orders/", `{"user_id":42}`)
	if err := handler.CreateOrder(c); !errors.Is(err, domain.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestCatalogHandler_AddOrderItem_RejectsNonPositiveQuantity(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(&stubCatalogRepo{
		addOrderItemFn: func(ctx context.Context, in domain.OrderItemPayload) (domain.OrderItem, error) {
			t.Fatalf("should not be called")
			return domain.OrderItem{}, nil
		},
	})

	c, _ := jsonContext(e, http.MethodPost, "/order-items/", `{"order_id":1,"product_id":1,"quantity":0}`)
	if code := statusOf(t, handler.AddOrderItem(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}
