package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/models"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

// surveyError maps survey service errors onto responses
func surveyError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrSurveyNotFound):
		return notFound(c, "Survey not found")
	case errors.Is(err, services.ErrOrganizationNotFound):
		return notFound(c, "Organization not found")
	case errors.Is(err, services.ErrInvalidSchedule):
		return badRequest(c, "closeAt must be after openAt")
	}
	return serverErrorWithDetails(c, message, err)
}

// ListSurveys returns surveys, optionally filtered by ?organizationId=
func ListSurveys(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		surveys, err := a.Surveys.List(c.Query("organizationId"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch surveys", err)
		}

		return success(c, fiber.Map{"surveys": surveys})
	}
}

func GetSurvey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		survey, err := a.Surveys.Get(c.Params("id"))
		if err != nil {
			return surveyError(c, err, "Failed to fetch survey")
		}

		return success(c, fiber.Map{"survey": survey})
	}
}

// CreateSurvey creates a DRAFT survey
func CreateSurvey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSurveyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		survey, err := a.Surveys.Create(req)
		if err != nil {
			return surveyError(c, err, "Failed to create survey")
		}

		return created(c, fiber.Map{"survey": survey})
	}
}

func UpdateSurvey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSurveyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		survey, err := a.Surveys.Update(c.Context(), c.Params("id"), req)
		if err != nil {
			return surveyError(c, err, "Failed to update survey")
		}

		return success(c, fiber.Map{"survey": survey})
	}
}

func DeleteSurvey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Surveys.Delete(c.Context(), c.Params("id")); err != nil {
			return surveyError(c, err, "Failed to delete survey")
		}

		return success(c, fiber.Map{"success": true})
	}
}
