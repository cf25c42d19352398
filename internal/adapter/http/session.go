package http

import (
	"context"
	"strings"

	"cv-amplify/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie holds the session token issued by the sign-in service.
const SessionCookie = "session"

const sessionKey = "session"

// Sessions resolves the session for every request from the session cookie
// or a Bearer token and stores it for handlers.
func Sessions(provider domain.SessionProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := provider.Session(c.UserContext(), credential(c))
		c.Locals(sessionKey, s)
		return c.Next()
	}
}

func credential(c *fiber.Ctx) string {
	if v := c.Cookies(SessionCookie); v != "" {
		return v
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// SessionFrom returns the session stored by Sessions, or the demo session
// when the middleware did not run.
func SessionFrom(c *fiber.Ctx) domain.Session {
	if s, ok := c.Locals(sessionKey).(domain.Session); ok {
		return s
	}
	return domain.DemoSession()
}

type demoSessions struct{}

func (demoSessions) Session(context.Context, string) domain.Session { return domain.DemoSession() }
