package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"ocai-hub/app"
	"ocai-hub/export"
	"ocai-hub/models"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// ExportCSV downloads a de-identified responses or aggregates export
func ExportCSV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ExportCSVRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		var buf bytes.Buffer
		filename, err := a.Exports.Write(c.Context(), &buf, req.SurveyID, req.ExportType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSurveyNotFound):
				return notFound(c, "Survey not found")
			case errors.Is(err, services.ErrUnsupportedExport):
				return badRequest(c, "exportType must be one of: responses, aggregates")
			}
			return serverErrorWithDetails(c, "Failed to export data", err)
		}

		return sendCSV(c, filename, buf.Bytes())
	}
}

// ExportChart downloads the data behind one report chart, ?slice= picks the slice
func ExportChart(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		filename, err := a.Exports.WriteChart(c.Context(), &buf, c.Params("id"), c.Params("kind"), c.Query("slice"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSurveyNotFound):
				return notFound(c, "Survey not found")
			case errors.Is(err, services.ErrSliceNotFound):
				return notFound(c, "Slice not found or below the reporting threshold")
			case errors.Is(err, export.ErrUnsupportedChart):
				return badRequest(c, "chart must be one of: radar, bar, delta")
			}
			return serverErrorWithDetails(c, "Failed to export chart", err)
		}

		return sendCSV(c, filename, buf.Bytes())
	}
}
