package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourmove-ai/admin-dashboard/app/repository"
)

// Global controller instances
var accessController *AccessController
var reportController *ReportController

// InitializeAccessController initializes the global access controller with repositories
func InitializeAccessController() {
	repos := repository.GetGlobalRepositories()
	accessController = NewAccessController(repos)
}

// InitializeReportController initializes the global report controller with repositories
func InitializeReportController() {
	repos := repository.GetGlobalRepositories()
	reportController = NewReportController(repos)
}

// GetAccessController returns the global access controller instance
func GetAccessController() *AccessController {
	if accessController == nil {
		InitializeAccessController()
	}
	return accessController
}

// GetReportController returns the global report controller instance
func GetReportController() *ReportController {
	if reportController == nil {
		InitializeReportController()
	}
	return reportController
}

// Adapter functions to keep the router wiring on plain handler funcs

func HandleAccessDashboard(c *fiber.Ctx) error {
	return GetAccessController().HandleDashboard(c)
}

func HandleAddProduct(c *fiber.Ctx) error {
	return GetAccessController().HandleAddProduct(c)
}

func HandleRemoveProduct(c *fiber.Ctx) error {
	return GetAccessController().HandleRemoveProduct(c)
}

func HandleCheckSubscription(c *fiber.Ctx) error {
	return GetAccessController().HandleCheckSubscription(c)
}

func HandleUpdateSubscription(c *fiber.Ctx) error {
	return GetAccessController().HandleUpdateSubscription(c)
}

func HandleExtendSubscription(c *fiber.Ctx) error {
	return GetAccessController().HandleExtendSubscription(c)
}

func HandleGrantSubscription(c *fiber.Ctx) error {
	return GetAccessController().HandleGrantSubscription(c)
}

func HandleTagCreator(c *fiber.Ctx) error {
	return GetAccessController().HandleTagCreator(c)
}

func HandleChargeback(c *fiber.Ctx) error {
	return GetReportController().HandleChargeback(c)
}

func HandleChargebackPull(c *fiber.Ctx) error {
	return GetReportController().HandleChargebackPull(c)
}
