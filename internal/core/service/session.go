package service

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/catalogadmin/console/internal/core/domain"
)

// Session holds the bearer credential of the running console. There is at
// most one credential; a later login replaces it and nothing clears it.
type Session struct {
	mu   sync.RWMutex
	cred domain.Credential
}

func NewSession() *Session {
	return &Session{}
}

// SetCredential stores token and returns the snapshot that now represents it.
// JWT claims are read without verification for display only; opaque tokens
// are stored as they are.
func (s *Session) SetCredential(token string) domain.Credential {
	cred := domain.Credential{Token: token}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil {
			cred.Subject = sub
		}
		if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
			cred.IssuedAt = iat.Time
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			cred.ExpiresAt = exp.Time
		}
	}

	s.mu.Lock()
	s.cred = cred
	s.mu.Unlock()
	return cred
}

// Credential returns the current snapshot and whether one is set.
func (s *Session) Credential() (domain.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, !s.cred.IsZero()
}

// Require returns the current snapshot or a local *domain.AuthError when the
// console has not logged in yet.
func (s *Session) Require() (domain.Credential, error) {
	cred, ok := s.Credential()
	if !ok {
		return domain.Credential{}, &domain.AuthError{}
	}
	return cred, nil
}
