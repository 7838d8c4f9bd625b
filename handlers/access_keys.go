package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/models"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

// ListAccessKeys returns keys, optionally filtered by ?organizationId=
func ListAccessKeys(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		keys, err := a.AccessKeys.List(c.Query("organizationId"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch access keys", err)
		}

		return success(c, fiber.Map{"accessKeys": keys})
	}
}

func CreateAccessKey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateAccessKeyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		key, err := a.AccessKeys.Create(req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccessKeyExists):
				return badRequest(c, "Access key already exists")
			case errors.Is(err, services.ErrOrganizationNotFound):
				return notFound(c, "Organization not found")
			}
			return serverErrorWithDetails(c, "Failed to create access key", err)
		}

		return created(c, fiber.Map{"accessKey": key})
	}
}

func UpdateAccessKey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateAccessKeyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		key, err := a.AccessKeys.Update(c.Params("id"), req)
		if err != nil {
			if errors.Is(err, services.ErrAccessKeyNotFound) {
				return notFound(c, "Access key not found")
			}
			return serverErrorWithDetails(c, "Failed to update access key", err)
		}

		return success(c, fiber.Map{"accessKey": key})
	}
}

func DeleteAccessKey(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.AccessKeys.Delete(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrAccessKeyNotFound) {
				return notFound(c, "Access key not found")
			}
			return serverErrorWithDetails(c, "Failed to delete access key", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
