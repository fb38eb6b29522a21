package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
	"github.com/catalogadmin/console/internal/pkg/metrics"
	"github.com/catalogadmin/console/internal/pkg/validation"
)

// lister is the kind-erased side of a Collection.
type lister interface {
	List(ctx context.Context) error
}

// Catalog runs the create-then-refresh cycle for every resource kind.
type Catalog struct {
	api     ports.Requester
	session *Session
	view    ports.View
	valid   *validation.Validator
	logger  zerolog.Logger

	Categories *Collection[domain.Category]
	Products   *Collection[domain.Product]
	Users      *Collection[domain.User]
	Orders     *Collection[domain.Order]
}

func NewCatalog(api ports.Requester, session *Session, view ports.View, valid *validation.Validator, logger zerolog.Logger) *Catalog {
	logger = logger.With().Str("component", "catalog").Logger()
	return &Catalog{
		api:        api,
		session:    session,
		view:       view,
		valid:      valid,
		logger:     logger,
		Categories: NewCollection[domain.Category](domain.KindCategory, api, session, view, valid, logger),
		Products:   NewCollection[domain.Product](domain.KindProduct, api, session, view, valid, logger),
		Users:      NewCollection[domain.User](domain.KindUser, api, session, view, valid, logger),
		Orders:     NewCollection[domain.Order](domain.KindOrder, api, session, view, valid, logger),
	}
}

// submission describes one create form.
type submission struct {
	form     domain.Form
	target   domain.ResourceKind // endpoint the payload is posted to
	refresh  domain.ResourceKind // list re-fetched on success
	success  string
	fallback string
}

var (
	categorySubmission = submission{
		form: domain.FormCategory, target: domain.KindCategory, refresh: domain.KindCategory,
		success: "Category created successfully!", fallback: "Failed to create category",
	}
	productSubmission = submission{
		form: domain.FormProduct, target: domain.KindProduct, refresh: domain.KindProduct,
		success: "Product created successfully!", fallback: "Failed to create product",
	}
	orderSubmission = submission{
		form: domain.FormOrder, target: domain.KindOrder, refresh: domain.KindOrder,
		success: "Order created successfully!", fallback: "Failed to create order",
	}
	orderItemSubmission = submission{
		form: domain.FormOrderItem, target: domain.KindOrderItem, refresh: domain.KindOrder,
		success: "Item added to order successfully!", fallback: "Failed to add item to order",
	}
)

func (c *Catalog) CreateCategory(ctx context.Context, form domain.CategoryForm) error {
	form = form.Trimmed()
	return c.submit(ctx, categorySubmission, form, func() (any, error) { return form.Payload() })
}

func (c *Catalog) CreateProduct(ctx context.Context, form domain.ProductForm) error {
	form = form.Trimmed()
	return c.submit(ctx, productSubmission, form, func() (any, error) { return form.Payload() })
}

func (c *Catalog) CreateOrder(ctx context.Context, form domain.OrderForm) error {
	form = form.Trimmed()
	return c.submit(ctx, orderSubmission, form, func() (any, error) { return form.Payload() })
}

func (c *Catalog) AddOrderItem(ctx context.Context, form domain.OrderItemForm) error {
	form = form.Trimmed()
	return c.submit(ctx, orderItemSubmission, form, func() (any, error) { return form.Payload() })
}

// submit validates the form, converts it, posts the payload and refreshes the
// dependent list once on success. Failures are shown on the form and returned;
// they never escape as panics.
func (c *Catalog) submit(ctx context.Context, s submission, form any, payload func() (any, error)) error {
	body, err := c.prepare(s.form, form, payload)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(s.form), "invalid").Inc()
		c.view.ShowError(s.form, invalidMessage(s.form, err))
		return err
	}

	cred, err := c.session.Require()
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(s.form), "failed").Inc()
		c.view.ShowError(s.form, failureMessage(err, s.fallback))
		return err
	}

	resp, err := c.api.Do(ctx, ports.Request{
		Method:     http.MethodPost,
		Path:       s.target.Path(),
		Body:       body,
		Credential: cred,
	})
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(s.form), "failed").Inc()
		c.view.ShowError(s.form, failureMessage(err, s.fallback))
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	metrics.SubmissionsTotal.WithLabelValues(string(s.form), "success").Inc()
	c.logger.Info().Str("form", string(s.form)).Msg("submission accepted")
	c.view.ShowSuccess(s.success)

	if err := c.Refresh(ctx, s.refresh); err != nil {
		c.logger.Debug().Err(err).Str("kind", string(s.refresh)).Msg("refresh after submit failed")
	}
	return nil
}

// prepare runs the string-level checks, converts the form and checks the
// typed payload. Every failure is a *domain.ValidationError.
func (c *Catalog) prepare(name domain.Form, form any, payload func() (any, error)) (any, error) {
	if err := c.valid.Form(name, form); err != nil {
		return nil, err
	}
	body, err := payload()
	if err != nil {
		return nil, err
	}
	if err := c.valid.Form(name, body); err != nil {
		return nil, err
	}
	return body, nil
}

// Refresh re-fetches the list of kind.
func (c *Catalog) Refresh(ctx context.Context, kind domain.ResourceKind) error {
	l, err := c.collection(kind)
	if err != nil {
		return err
	}
	return l.List(ctx)
}

// RefreshAll loads categories, users, products and orders concurrently and
// returns the first failure. A failing kind does not cancel the others.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	for _, l := range []lister{c.Categories, c.Users, c.Products, c.Orders} {
		l := l
		g.Go(func() error { return l.List(ctx) })
	}
	return g.Wait()
}

func (c *Catalog) collection(kind domain.ResourceKind) (lister, error) {
	switch kind {
	case domain.KindCategory:
		return c.Categories, nil
	case domain.KindProduct:
		return c.Products, nil
	case domain.KindUser:
		return c.Users, nil
	case domain.KindOrder:
		return c.Orders, nil
	default:
		return nil, fmt.Errorf("catalog: %s cannot be listed", kind)
	}
}
