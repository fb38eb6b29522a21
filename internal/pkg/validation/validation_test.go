package validation

import (
	"errors"
	"testing"

	"github.com/catalogadmin/console/internal/core/domain"
)

func TestForm_RequiredFieldsUseTagNames(t *testing.T) {
	v := New()

	err := v.Form(domain.FormProduct, domain.ProductForm{Name: "Widget"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Form != domain.FormProduct {
		t.Fatalf("unexpected form: %s", ve.Form)
	}
	want := []string{"price is required", "category_id is required"}
	if len(ve.Problems) != len(want) {
		t.Fatalf("expected %v, got %v", want, ve.Problems)
	}
	for i := range want {
		if ve.Problems[i] != want[i] {
			t.Fatalf("problem %d: expected %q, got %q", i, want[i], ve.Problems[i])
		}
	}
}

func TestForm_NumericRules(t *testing.T) {
	v := New()

	err := v.Form(domain.FormOrderItem, domain.OrderItemForm{OrderID: "1", ProductID: "x", Quantity: "-2"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", ve.Problems)
	}
	if ve.Problems[0] != "product_id must be a whole number" || ve.Problems[1] != "quantity must be a whole number" {
		t.Fatalf("unexpected problems: %v", ve.Problems)
	}
}

func TestForm_PayloadGreaterThanZero(t *testing.T) {
	v := New()

	err := v.Form(domain.FormOrderItem, domain.OrderItemPayload{OrderID: 1, ProductID: 2, Quantity: 0})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Problems) != 1 || ve.Problems[0] != "quantity must be greater than 0" {
		t.Fatalf("unexpected problems: %v", ve.Problems)
	}
}

func TestValid_NestedReference(t *testing.T) {
	v := New()

	ok := domain.Product{ID: 1, Name: "Widget", Price: 9.99, Category: domain.CategoryRef{Name: "Tools"}}
	if !v.Valid(ok) {
		t.Fatalf("expected product with category name to be valid")
	}

	missing := domain.Product{ID: 2, Name: "Gadget", Price: 5, Category: domain.CategoryRef{ID: 3}}
	if v.Valid(missing) {
		t.Fatalf("expected product without category name to be invalid")
	}

	order := domain.Order{ID: 4, Status: "pending", User: domain.UserRef{Username: "alice"}, Items: []domain.OrderItem{{}}}
	if !v.Valid(order) {
		t.Fatalf("expected order to be valid regardless of items")
	}
}
