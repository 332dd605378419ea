package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/yourmove-ai/admin-dashboard/app/controllers"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/env"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Password gate
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)

	// Access tab: entitlements and subscription lifecycle
	group.Get("/", middleware.RequireAuth, controllers.HandleAccessDashboard)
	group.Post("/access/products/add", middleware.RequireAuth, controllers.HandleAddProduct)
	group.Post("/access/products/remove", middleware.RequireAuth, controllers.HandleRemoveProduct)
	group.Post("/access/subscription/check", middleware.RequireAuth, controllers.HandleCheckSubscription)
	group.Post("/access/subscription/update", middleware.RequireAuth, controllers.HandleUpdateSubscription)
	group.Post("/access/subscription/extend", middleware.RequireAuth, controllers.HandleExtendSubscription)
	group.Post("/access/subscription/grant", middleware.RequireAuth, controllers.HandleGrantSubscription)
	group.Post("/access/creator/tag", middleware.RequireAuth, controllers.HandleTagCreator)

	// Chargeback tab: per-user data pull
	group.Get("/chargeback", middleware.RequireAuth, controllers.HandleChargeback)
	group.Post("/chargeback/pull", middleware.RequireAuth, controllers.HandleChargebackPull)
}
