package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/yourmove-ai/admin-dashboard/internal/pkg/subscription"
)

var validate = validator.New()

// csrfToken reads the token set by the CSRF middleware for form rendering.
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

// validEmail checks an operator-supplied address before any database round
// trip is made for it.
func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// redirectWithResult flashes an operation outcome and redirects. Storage
// failures get their own marker so the banner can say the database call
// failed instead of pretending the record does not exist.
func redirectWithResult(c *fiber.Ctx, res subscription.OpResult, to string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": res.Message,
	}
	if res.OK {
		return flash.WithSuccess(c, fm).Redirect(to)
	}

	fm["type"] = "error"
	if res.StorageFailed() {
		fm["storage"] = true
	}
	return flash.WithError(c, fm).Redirect(to)
}

// redirectWithError flashes a plain error message and redirects.
func redirectWithError(c *fiber.Ctx, message, to string) error {
	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	}).Redirect(to)
}
