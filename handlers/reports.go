package handlers

import (
	"errors"
	"ocai-hub/app"
	"ocai-hub/services"

	"github.com/gofiber/fiber/v2"
)

// GetAggregates returns every reportable slice of a survey
func GetAggregates(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aggs, err := a.Reports.Aggregates(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSurveyNotFound) {
				return notFound(c, "Survey not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch aggregates", err)
		}

		return success(c, fiber.Map{
			"aggregates":          aggs,
			"kAnonymityThreshold": a.Reports.Threshold(),
		})
	}
}

// RecomputeAggregates drops cached aggregates and computes them from the responses
func RecomputeAggregates(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aggs, err := a.Reports.Recompute(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSurveyNotFound) {
				return notFound(c, "Survey not found")
			}
			return serverErrorWithDetails(c, "Failed to compute aggregates", err)
		}

		return success(c, fiber.Map{
			"success":    true,
			"message":    "Aggregation completed successfully",
			"aggregates": aggs,
		})
	}
}

func GetLeadershipComparison(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cmp, err := a.Reports.Leadership(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrSurveyNotFound) {
				return notFound(c, "Survey not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch leadership comparison", err)
		}

		return success(c, fiber.Map{"comparison": cmp})
	}
}

// GetAdminStats returns platform-wide counts
func GetAdminStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Stats.Get(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch statistics", err)
		}

		return success(c, fiber.Map{"stats": stats})
	}
}
