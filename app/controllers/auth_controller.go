package controllers

import (
	"crypto/subtle"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourmove-ai/admin-dashboard/internal/pkg/constants"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/env"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/middleware"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/session"
)

// HandleAuthLogin renders the password gate and unlocks the session on a
// correct shared secret. Every operator uses the same secret; the session
// only records that the dashboard is unlocked.
func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		if !verifyAdminPassword(c.FormValue("password")) {
			fm["message"] = "Password incorrect"

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		sess.Set(middleware.AuthKey, true)

		if err := sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Dashboard unlocked.",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.AccessRoute)
	}

	return c.Render("login", fiber.Map{
		"Title":     "Access Admin Dashboard",
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

// HandleAuthLogout destroys the session and returns to the password gate.
func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	if err := sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Locked. See you next time.",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
}

// verifyAdminPassword checks the operator-supplied password against the
// shared secret. ADMIN_PASSWORD_HASH (bcrypt) takes precedence; the plain
// ADMIN_PASSWORD fallback is compared in constant time.
func verifyAdminPassword(password string) bool {
	if hash := env.GetEnv("ADMIN_PASSWORD_HASH", ""); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	secret := env.GetEnv("ADMIN_PASSWORD", "")
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}
