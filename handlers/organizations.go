package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/models"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

// ListOrganizations returns every organization with survey, key and response counts
func ListOrganizations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgs, err := a.Organizations.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch organizations", err)
		}

		return success(c, fiber.Map{"organizations": orgs})
	}
}

func GetOrganization(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		org, err := a.Organizations.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrOrganizationNotFound) {
				return notFound(c, "Organization not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch organization", err)
		}

		return success(c, fiber.Map{"organization": org})
	}
}

// CreateOrganization creates a new organization
func CreateOrganization(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateOrganizationRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		org, err := a.Organizations.Create(req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create organization", err)
		}

		return created(c, fiber.Map{"organization": org})
	}
}

func UpdateOrganization(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateOrganizationRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		org, err := a.Organizations.Update(c.Params("id"), req)
		if err != nil {
			if errors.Is(err, services.ErrOrganizationNotFound) {
				return notFound(c, "Organization not found")
			}
			return serverErrorWithDetails(c, "Failed to update organization", err)
		}

		return success(c, fiber.Map{"organization": org})
	}
}

// DeleteOrganization removes an organization and everything that belongs to it
func DeleteOrganization(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Organizations.Delete(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, services.ErrOrganizationNotFound) {
				return notFound(c, "Organization not found")
			}
			return serverErrorWithDetails(c, "Failed to delete organization", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// GetOrganizationResults returns the aggregate of every response in the organization.
// Individual responses are not included.
func GetOrganizationResults(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := a.Reports.OrganizationResults(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrOrganizationNotFound) {
				return notFound(c, "Organization not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch organization results", err)
		}

		return success(c, fiber.Map{
			"organizationId":        results.OrganizationID,
			"organizationName":      results.OrganizationName,
			"totalResponses":        results.TotalResponses,
			"organizationAggregate": results.Aggregate,
		})
	}
}
