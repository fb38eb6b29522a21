package service

import (
	"errors"

	"github.com/catalogadmin/console/internal/core/domain"
)

// User-facing messages.
const (
	msgFillAllFields    = "Please fill in all fields"
	msgInvalidQuantity  = "Please fill in all fields and provide a valid quantity"
	msgUnexpected       = "An error occurred"
	msgLoginFirst       = "Please log in first"
	msgLoggedIn         = "Logged in successfully!"
	msgLoginRejected    = "Invalid credentials"
	msgTokenMissing     = "Authorization failed. Please log in again."
	msgRegistered       = "User registered successfully! Please log in."
	msgRegisterRejected = "Failed to register user"
)

// failureMessage picks what a form shows for a failed submission: the
// server's detail when it sent one, fallback for other rejections.
func failureMessage(err error, fallback string) string {
	if errors.Is(err, domain.ErrNoCredential) {
		return msgLoginFirst
	}
	var ae *domain.AuthError
	var he *domain.HTTPError
	if !errors.As(err, &ae) && !errors.As(err, &he) {
		return msgUnexpected
	}
	if detail := domain.Detail(err); detail != "" {
		return detail
	}
	return fallback
}

// invalidMessage is what a form shows when client-side checks fail.
func invalidMessage(form domain.Form, err error) string {
	switch form {
	case domain.FormLogin, domain.FormRegister:
		return msgFillAllFields
	case domain.FormOrderItem:
		return msgInvalidQuantity
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Problems) > 0 {
		return ve.Error()
	}
	return msgFillAllFields
}
