package domain

import (
	"strconv"
	"strings"
)

// Forms hold the raw string values a user typed. They are trimmed and
// validated before being turned into JSON payloads.

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f LoginForm) Trimmed() LoginForm {
	f.Username = strings.TrimSpace(f.Username)
	f.Password = strings.TrimSpace(f.Password)
	return f
}

func (f LoginForm) Payload() CredentialsPayload {
	return CredentialsPayload{Username: f.Username, Password: f.Password}
}

type RegisterForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f RegisterForm) Trimmed() RegisterForm {
	f.Username = strings.TrimSpace(f.Username)
	f.Password = strings.TrimSpace(f.Password)
	return f
}

func (f RegisterForm) Payload() CredentialsPayload {
	return CredentialsPayload{Username: f.Username, Password: f.Password}
}

type CategoryForm struct {
	Name string `form:"name" validate:"required"`
}

func (f CategoryForm) Trimmed() CategoryForm {
	f.Name = strings.TrimSpace(f.Name)
	return f
}

func (f CategoryForm) Payload() (CategoryPayload, error) {
	return CategoryPayload{Name: f.Name}, nil
}

type ProductForm struct {
	Name       string `form:"name"        validate:"required"`
	Price      string `form:"price"       validate:"required,numeric"`
	CategoryID string `form:"category_id" validate:"required,number"`
}

func (f ProductForm) Trimmed() ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return f
}

func (f ProductForm) Payload() (ProductPayload, error) {
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		return ProductPayload{}, &ValidationError{Form: FormProduct, Problems: []string{"price must be a number"}}
	}
	categoryID, err := parseID(FormProduct, "category_id", f.CategoryID)
	if err != nil {
		return ProductPayload{}, err
	}
	return ProductPayload{Name: f.Name, Price: price, CategoryID: categoryID}, nil
}

type OrderForm struct {
	UserID string `form:"user_id" validate:"required,number"`
}

func (f OrderForm) Trimmed() OrderForm {
	f.UserID = strings.TrimSpace(f.UserID)
	return f
}

func (f OrderForm) Payload() (OrderPayload, error) {
	userID, err := parseID(FormOrder, "user_id", f.UserID)
	if err != nil {
		return OrderPayload{}, err
	}
	return OrderPayload{UserID: userID}, nil
}

type OrderItemForm struct {
	OrderID   string `form:"order_id"   validate:"required,number"`
	ProductID string `form:"product_id" validate:"required,number"`
	Quantity  string `form:"quantity"   validate:"required,number"`
}

func (f OrderItemForm) Trimmed() OrderItemForm {
	f.OrderID = strings.TrimSpace(f.OrderID)
	f.ProductID = strings.TrimSpace(f.ProductID)
	f.Quantity = strings.TrimSpace(f.Quantity)
	return f
}

func (f OrderItemForm) Payload() (OrderItemPayload, error) {
	orderID, err := parseID(FormOrderItem, "order_id", f.OrderID)
	if err != nil {
		return OrderItemPayload{}, err
	}
	productID, err := parseID(FormOrderItem, "product_id", f.ProductID)
	if err != nil {
		return OrderItemPayload{}, err
	}
	quantity, err := strconv.Atoi(f.Quantity)
	if err != nil {
		return OrderItemPayload{}, &ValidationError{Form: FormOrderItem, Problems: []string{"quantity must be a whole number"}}
	}
	return OrderItemPayload{OrderID: orderID, ProductID: productID, Quantity: quantity}, nil
}

func parseID(form Form, field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Form: form, Problems: []string{field + " must be a number"}}
	}
	return id, nil
}

// Payloads are the JSON bodies exchanged with the catalog API.

type CredentialsPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type,omitempty"`
}

type CategoryPayload struct {
	Name string `json:"name" validate:"required"`
}

type ProductPayload struct {
	Name       string  `json:"name"        validate:"required"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"category_id" validate:"gt=0"`
}

type OrderPayload struct {
	UserID int64  `json:"user_id"          validate:"gt=0"`
	Status string `json:"status,omitempty"`
}

type OrderItemPayload struct {
	OrderID   int64 `json:"order_id"   validate:"gt=0"`
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity"   validate:"gt=0"`
}
