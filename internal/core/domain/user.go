package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the public view of an account, as the catalog API lists it.
type User struct {
	ID       int64  `json:"id"       validate:"required"`
	Username string `json:"username" validate:"required"`
}

func (u User) EntityID() int64 { return u.ID }

func (u User) Summary() string {
	return fmt.Sprintf("ID: %d, Username: %s", u.ID, u.Username)
}

// UserRef is the user embedded in an order listing.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required"`
}

// Account is a registered user together with its password hash.
// It only lives inside the catalog API process.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Public strips the password hash.
func (a Account) Public() User {
	return User{ID: a.ID, Username: a.Username}
}
