package ports

import (
	"context"
	"net/http"

	"github.com/catalogadmin/console/internal/core/domain"
)

// Request describes one call to the catalog API.
type Request struct {
	Method string
	Path   string
	// Header is owned by the caller and is never modified.
	Header http.Header
	// Body is JSON-encoded when non-nil.
	Body any
	// Credential is the session snapshot to present. The zero value sends no
	// Authorization header.
	Credential domain.Credential
}

// Requester performs a single round trip. Non-2xx statuses come back as
// *domain.AuthError or *domain.HTTPError, network failures as
// *domain.TransportError. On success the caller owns and must close the body.
type Requester interface {
	Do(ctx context.Context, req Request) (*http.Response, error)
}
