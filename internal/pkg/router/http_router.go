package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourmove-ai/admin-dashboard/app/controllers"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/middleware"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Resolve the session once per request before anything else
	app.Use(middleware.SessionAuth)

	// Initialize controllers with repositories
	controllers.InitializeAccessController()
	controllers.InitializeReportController()

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
