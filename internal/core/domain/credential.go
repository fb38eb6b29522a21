package domain

import "time"

// Credential is an immutable snapshot of the bearer token held by a session.
// Subject and the timestamps are informational; they are filled in only when
// the token happens to be a readable JWT.
type Credential struct {
	Token     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c Credential) IsZero() bool { return c.Token == "" }

// Bearer is the Authorization header value for the credential.
func (c Credential) Bearer() string { return "Bearer " + c.Token }
