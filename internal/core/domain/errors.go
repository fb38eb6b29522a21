package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoCredential is wrapped by AuthError when an authenticated call is
// attempted before login.
var ErrNoCredential = errors.New("not logged in")

// ValidationError reports form fields that failed client-side checks.
// No network call is made when it is returned.
type ValidationError struct {
	Form     Form
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "missing fields"
	}
	return "missing fields: " + strings.Join(e.Problems, "; ")
}

// AuthError is an absent credential (Status 0, checked locally) or a
// credential the server rejected with 401.
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Status == 0 {
		return "auth: " + ErrNoCredential.Error()
	}
	if e.Detail != "" {
		return fmt.Sprintf("auth: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("auth: status %d", e.Status)
}

func (e *AuthError) Unwrap() error {
	if e.Status == 0 {
		return ErrNoCredential
	}
	return nil
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// TransportError is a failure below HTTP: DNS, refused or reset connections, timeouts.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a response body that is not valid JSON or not the expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Detail returns the server-supplied detail carried by err, if any.
func Detail(err error) string {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Detail
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Detail
	}
	return ""
}
