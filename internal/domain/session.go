package domain

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the current-session observable supplied by the identity gate.
// When AuthEnabled is false the application runs in demo mode.
type Session struct {
	User        *Identity `json:"user"`
	Loading     bool      `json:"loading"`
	AuthEnabled bool      `json:"authEnabled"`
}

// DemoSession is the session reported when authentication is disabled.
func DemoSession() Session {
	return Session{AuthEnabled: false}
}

// SessionProvider resolves the session for a presented credential (a token,
// a cookie value, or "" when none was sent).
type SessionProvider interface {
	Session(ctx context.Context, credential string) Session
}
