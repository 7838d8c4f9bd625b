package setup

import (
	"ocai-hub/app"
	"ocai-hub/config"
	"ocai-hub/handlers"
	"ocai-hub/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, cfg *config.Config) {
	// Pages
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/reports/:id", handlers.ReportPage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Get("/admin/stats", handlers.GetAdminStats(application))

	api.Get("/organizations", handlers.ListOrganizations(application))
	api.Post("/organizations", handlers.CreateOrganization(application))
	api.Get("/organizations/:id", handlers.GetOrganization(application))
	api.Put("/organizations/:id", handlers.UpdateOrganization(application))
	api.Delete("/organizations/:id", handlers.DeleteOrganization(application))
	api.Get("/organizations/:id/results", handlers.GetOrganizationResults(application))

	api.Get("/access-keys", handlers.ListAccessKeys(application))
	api.Post("/access-keys", handlers.CreateAccessKey(application))
	api.Put("/access-keys/:id", handlers.UpdateAccessKey(application))
	api.Delete("/access-keys/:id", handlers.DeleteAccessKey(application))

	api.Get("/surveys", handlers.ListSurveys(application))
	api.Post("/surveys", handlers.CreateSurvey(application))
	api.Get("/surveys/:id", handlers.GetSurvey(application))
	api.Put("/surveys/:id", handlers.UpdateSurvey(application))
	api.Delete("/surveys/:id", handlers.DeleteSurvey(application))
	api.Post("/surveys/:id/respond",
		middleware.SubmissionLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		handlers.SubmitResponse(application))
	api.Get("/surveys/:id/responses", handlers.ListResponses(application))
	api.Get("/surveys/:id/aggregate", handlers.GetAggregates(application))
	api.Post("/surveys/:id/aggregate", handlers.RecomputeAggregates(application))
	api.Get("/surveys/:id/leadership", handlers.GetLeadershipComparison(application))
	api.Get("/surveys/:id/charts/:kind.csv", handlers.ExportChart(application))

	api.Delete("/responses/:id", handlers.DeleteResponse(application))

	api.Post("/export/csv", handlers.ExportCSV(application))
}
