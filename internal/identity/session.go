package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptyToken  = errors.New("empty session token")
	ErrNoSubject   = errors.New("session token has no subject claim")
	ErrTokenFormat = errors.New("malformed session token")
)

// SessionClaims represents the claims the identity provider puts in its
// session tokens. Only the subject (the stable user identifier) and the
// standard registered claims matter to this client.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Session binds the client to one authenticated user. The token is forwarded
// to the backend as a bearer credential; the user ID scopes every query.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// SessionFromToken extracts a session from the identity provider's JWT.
// The signature is not verified here: the backend is the verifier, the
// client only needs the stable user identifier and the expiry for display.
func SessionFromToken(token string) (*Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	claims := &SessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenFormat, err)
	}

	if claims.Subject == "" {
		return nil, ErrNoSubject
	}

	session := &Session{
		UserID: claims.Subject,
		Token:  token,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

// NewSession builds a session from an already-resolved user identifier, for
// callers that receive the user ID directly from the identity SDK.
func NewSession(userID, token string) *Session {
	return &Session{UserID: userID, Token: token}
}

// Valid reports whether the session identifies a user and has not expired.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.UserID == "" {
		return false
	}
	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return false
	}
	return true
}
