package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
)

// CatalogHandler serves the create and list endpoints of every collection.
type CatalogHandler struct {
	repo ports.CatalogRepository
}

func NewCatalogHandler(repo ports.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) ListUsers(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	users, err := h.repo.ListUsers(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req domain.CategoryPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	category, err := h.repo.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	categories, err := h.repo.ListCategories(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req domain.ProductPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	product, err := h.repo.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	products, err := h.repo.ListProducts(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// CreateOrder ignores any client-supplied status; new orders are pending.
func (h *CatalogHandler) CreateOrder(c echo.Context) error {
	var req domain.OrderPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Status = domain.OrderStatusPending
	order, err := h.repo.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *CatalogHandler) ListOrders(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	orders, err := h.repo.ListOrders(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *CatalogHandler) AddOrderItem(c echo.Context) error {
	var req domain.OrderItemPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.repo.AddOrderItem(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// pageParams reads ?skip=&limit=, defaulting to 0 and 100.
func pageParams(c echo.Context) (domain.Page, error) {
	page := domain.Page{Limit: domain.DefaultPageLimit}
	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError()
	if err != nil || page.Skip < 0 || page.Limit < 0 {
		return domain.Page{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "skip and limit must be non-negative integers")
	}
	return page, nil
}
