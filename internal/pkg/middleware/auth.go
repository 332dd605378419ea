package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourmove-ai/admin-dashboard/internal/pkg/session"
)

// Session keys and context locals for the shared-password gate. There is no
// per-operator identity; a session is either unlocked or it is not.
const (
	AuthKey     = "authenticated"
	KeyLoggedIn = "logged_in"
)

// SessionAuth resolves the session once per request and exposes the unlock
// state via Locals.
func SessionAuth(c *fiber.Ctx) error {
	loggedIn := false
	if store := session.GetSessionStore(); store != nil {
		if sess, err := store.Get(c); err == nil {
			if v, ok := sess.Get(AuthKey).(bool); ok {
				loggedIn = v
			}
		}
	}
	c.Locals(KeyLoggedIn, loggedIn)
	return c.Next()
}

// RequireAuth ensures an unlocked web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !IsLoggedIn(c) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPISessionAuth ensures an unlocked session for API routes and
// returns JSON 401 instead of a redirect.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if !IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// IsLoggedIn reads the unlock state set by SessionAuth.
func IsLoggedIn(c *fiber.Ctx) bool {
	if v, ok := c.Locals(KeyLoggedIn).(bool); ok {
		return v
	}
	return false
}
