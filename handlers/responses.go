package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/models"
	"ocai-hub/security"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

// SubmitResponse records a response to an OPEN survey
func SubmitResponse(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SubmitResponseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		clientIP := security.ClientIP(func(key string) string { return c.Get(key) }, c.IP())

		resp, err := a.Responses.Submit(c.Context(), c.Params("id"), req, clientIP)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSurveyNotFound):
				return notFound(c, "Survey not found")
			case errors.Is(err, services.ErrSurveyNotOpen):
				return forbidden(c, "Survey is not currently open")
			case errors.Is(err, services.ErrMissingScores):
				return badRequest(c, "nowScores and preferredScores (or answers) are required")
			}
			return serverErrorWithDetails(c, "Failed to submit response", err)
		}

		return created(c, fiber.Map{"success": true, "responseId": resp.ID})
	}
}

// ListResponses returns a survey's raw responses in submission order
func ListResponses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		responses, err := a.Responses.ListBySurvey(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSurveyNotFound) {
				return notFound(c, "Survey not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch responses", err)
		}

		return success(c, fiber.Map{"responses": responses})
	}
}

func DeleteResponse(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Responses.Delete(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, services.ErrResponseNotFound) {
				return notFound(c, "Response not found")
			}
			return serverErrorWithDetails(c, "Failed to delete response", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
