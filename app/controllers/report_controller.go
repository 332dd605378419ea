package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/yourmove-ai/admin-dashboard/app/models"
	"github.com/yourmove-ai/admin-dashboard/app/repository"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/constants"
	"github.com/yourmove-ai/admin-dashboard/internal/pkg/subscription"
)

// ReportController handles the chargeback data pull
type ReportController struct {
	service *subscription.Service
}

// NewReportController creates a report controller from injected repositories
func NewReportController(repos *repository.Repositories) *ReportController {
	return &ReportController{
		service: subscription.NewService(repos),
	}
}

// ReportSection is the view model for one collection in the chargeback page.
type ReportSection struct {
	Name  string
	Count int
	JSON  string
	Err   string
}

// HandleChargeback renders the chargeback tab.
func (rc *ReportController) HandleChargeback(c *fiber.Ctx) error {
	return c.Render("chargeback", fiber.Map{
		"Title":     "Chargeback",
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
		"Email":     "",
		"Sections":  nil,
	}, "layouts/main")
}

// HandleChargebackPull pulls the per-user report bundle and renders it.
func (rc *ReportController) HandleChargebackPull(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if !validEmail(email) {
		return redirectWithError(c, "Please enter a valid email address.", constants.ChargebackRoute)
	}

	report := rc.service.PullReport(c.Context(), email)

	return c.Render("chargeback", fiber.Map{
		"Title":     "Chargeback",
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
		"Email":     email,
		"Sections":  reportSections(report),
	}, "layouts/main")
}

// reportSections flattens the bundle for display, pretty-printing each
// collection as JSON.
func reportSections(report *models.Report) []ReportSection {
	rows := map[string][]map[string]interface{}{
		models.CollectionRefreshes:      report.Refreshes,
		models.CollectionRequests:       report.Requests,
		models.CollectionProfiles:       report.Profiles,
		models.CollectionProfileReviews: report.ProfileReviews,
	}

	sections := make([]ReportSection, 0, len(models.ReportCollections))
	for _, name := range models.ReportCollections {
		section := ReportSection{Name: name, Count: len(rows[name])}
		if msg, failed := report.Errors[name]; failed {
			section.Err = msg
		} else if data, err := json.MarshalIndent(rows[name], "", "  "); err == nil {
			section.JSON = string(data)
		}
		sections = append(sections, section)
	}
	return sections
}
