package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/services"
	"ocai-hub/views"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, component templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Context(), c.Response().BodyWriter())
}

// HomePage lists organizations and their surveys
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgs, err := a.Organizations.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch organizations", err)
		}
		surveys, err := a.Surveys.List("")
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch surveys", err)
		}

		return render(c, views.Home(orgs, surveys))
	}
}

// ReportPage renders the aggregate table of one survey
func ReportPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		survey, err := a.Surveys.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSurveyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Survey not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch survey", err)
		}

		aggs, err := a.Reports.Aggregates(c.Context(), survey.ID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch aggregates", err)
		}

		return render(c, views.Report(survey, aggs, a.Reports.Threshold()))
	}
}
