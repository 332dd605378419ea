package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourmove-ai/admin-dashboard/app/repository"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/subscription"
)

// APIServer exposes the report bundle as JSON for tooling that wants the raw
// data instead of the rendered chargeback page.
type APIServer struct {
	service *subscription.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{
		service: subscription.NewService(repository.GetGlobalRepositories()),
	}
}

// Pong is the ping endpoint response
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetReport returns the per-user report bundle across the four reporting
// collections. Security is enforced via session middleware attached in the
// router.
func (s *APIServer) GetReport(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "email query parameter missing",
		})
	}

	report := s.service.PullReport(c.Context(), email)
	return c.JSON(report)
}

// RegisterHandlers attaches the v1 endpoints to the given router group.
func RegisterHandlers(router fiber.Router, server *APIServer) {
	router.Get("/ping", server.GetPing)
	router.Get("/report", server.GetReport)
}
