package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/yourmove-ai/admin-dashboard/app/models"
	"github.com/yourmove-ai/admin-dashboard/app/repository"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/constants"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/subscription"
)

// AccessController handles the entitlement and subscription lifecycle forms
type AccessController struct {
	service *subscription.Service
	policy  subscription.Policy
}

// NewAccessController creates an access controller from injected repositories
func NewAccessController(repos *repository.Repositories) *AccessController {
	return &AccessController{
		service: subscription.NewService(repos),
		policy:  subscription.PolicyFromEnv(),
	}
}

// HandleDashboard renders the access tab with all action forms.
func (ac *AccessController) HandleDashboard(c *fiber.Ctx) error {
	return c.Render("access", fiber.Map{
		"Title":     "Access",
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
		"Products":  models.KnownProducts,
		"MaxDays":   ac.policy.MaxGrantDays,
	}, "layouts/main")
}

// HandleAddProduct grants a product entitlement to a user.
func (ac *AccessController) HandleAddProduct(c *fiber.Ctx) error {
	email := c.FormValue("email")
	product := c.FormValue("product")

	res := ac.service.AddEntitlement(c.Context(), email, product)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// HandleRemoveProduct revokes all entitlement records for a user+product pair.
func (ac *AccessController) HandleRemoveProduct(c *fiber.Ctx) error {
	email := c.FormValue("email")
	product := c.FormValue("product")

	res := ac.service.RemoveEntitlement(c.Context(), email, product)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// HandleCheckSubscription reports the subscription flag for an email.
func (ac *AccessController) HandleCheckSubscription(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if !validEmail(email) {
		return redirectWithError(c, "Please enter a valid email address.", constants.AccessRoute)
	}

	subscribed, err := ac.service.IsSubscribed(c.Context(), email)
	if err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Subscription lookup failed: " + err.Error(),
			"storage": true,
		}).Redirect(constants.AccessRoute)
	}

	if subscribed {
		return flash.WithSuccess(c, fiber.Map{
			"type":    "success",
			"message": "User '" + email + "' is Subscribed.",
		}).Redirect(constants.AccessRoute)
	}
	return redirectWithError(c, "User '"+email+"' is Not Subscribed.", constants.AccessRoute)
}

// HandleUpdateSubscription sets the subscription flag, with an optional
// explicit expiry date when enabling.
func (ac *AccessController) HandleUpdateSubscription(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if !validEmail(email) {
		return redirectWithError(c, "Please enter a valid email address.", constants.AccessRoute)
	}
	subscribed := c.FormValue("status") == "true"

	var expiry *time.Time
	if raw := c.FormValue("expiry"); subscribed && raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return redirectWithError(c, "Expiry must be a date in YYYY-MM-DD form.", constants.AccessRoute)
		}
		expiry = &parsed
	}

	res := ac.service.SetSubscription(c.Context(), email, subscribed, expiry)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// HandleExtendSubscription pushes an existing expiry out by a day count.
func (ac *AccessController) HandleExtendSubscription(c *fiber.Ctx) error {
	email, days, errMsg := ac.emailAndDays(c)
	if errMsg != "" {
		return redirectWithError(c, errMsg, constants.AccessRoute)
	}

	res := ac.service.ExtendSubscription(c.Context(), email, days)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// HandleGrantSubscription grants access days with floor-at-now semantics.
func (ac *AccessController) HandleGrantSubscription(c *fiber.Ctx) error {
	email, days, errMsg := ac.emailAndDays(c)
	if errMsg != "" {
		return redirectWithError(c, errMsg, constants.AccessRoute)
	}

	res := ac.service.GrantSubscription(c.Context(), email, days)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// HandleTagCreator grants a year of access and tags the account as creator.
func (ac *AccessController) HandleTagCreator(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if !validEmail(email) {
		return redirectWithError(c, "Please enter a valid email address.", constants.AccessRoute)
	}

	res := ac.service.TagCreatorAccount(c.Context(), email)
	return redirectWithResult(c, res, constants.AccessRoute)
}

// emailAndDays parses and bounds the common email + day-count form inputs.
func (ac *AccessController) emailAndDays(c *fiber.Ctx) (string, int, string) {
	email := c.FormValue("email")
	if !validEmail(email) {
		return "", 0, "Please enter a valid email address."
	}

	days, err := strconv.Atoi(c.FormValue("days"))
	if err != nil {
		return "", 0, "Day count must be a whole number."
	}
	if err := ac.policy.ValidateDays(days); err != nil {
		return "", 0, "Day count out of range: " + err.Error()
	}
	return email, days, ""
}
