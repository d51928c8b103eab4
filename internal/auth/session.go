// Package auth reads session state out of the bearer tokens the dashboard
// forwards with every request. deskd does not issue or verify tokens; the
// data API owns signature validation. What deskd needs locally is the expiry,
// so an already-dead session never costs a network round trip.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/meridianfx/deskd/pkg/errors"
)

// Session is the locally-readable view of a bearer token.
type Session struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// ParseSession extracts subject and expiry from a JWT without verifying the
// signature. A token with no exp claim is treated as non-expiring.
func ParseSession(token string) (*Session, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, errors.KindBadRequest, "malformed bearer token")
	}

	s := &Session{Token: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

// Expired reports whether the session is past its expiry at the given time.
// Sessions without an expiry never expire.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}
