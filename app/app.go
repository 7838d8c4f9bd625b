package app

import (
	"log/slog"
	"ocai-hub/bucketing"
	"ocai-hub/cache"
	"ocai-hub/database"
	"ocai-hub/export"
	"ocai-hub/lifecycle"
	"ocai-hub/security"
	"ocai-hub/services"
	"ocai-hub/validator"
	"time"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo          *database.Repository
	Cache         cache.Cacher
	Organizations *services.OrganizationService
	AccessKeys    *services.AccessKeyService
	Surveys       *services.SurveyService
	Responses     *services.ResponseService
	Reports       *services.ReportService
	Exports       *services.ExportService
	Stats         *services.StatsService
	Lifecycle     *lifecycle.Worker
	Validator     *validator.Validator
	Logger        *slog.Logger
}

// Options tune the report and submission services
type Options struct {
	Bucketer   *bucketing.Bucketer
	Hasher     services.IPHasher
	KThreshold int
	CacheTTL   time.Duration
}

// New creates a new App instance with all dependencies. Every service shares one
// guarded cache. The lifecycle worker is attached by the caller once its schedule has
// been parsed and must use App.Cache.
func New(repo *database.Repository, c cache.Cacher, opts Options, logger *slog.Logger) *App {
	if opts.Bucketer == nil {
		opts.Bucketer = bucketing.New()
	}
	if opts.Hasher == nil {
		opts.Hasher = security.NewIPHasher(0)
	}
	c = cache.Guard(c)

	reports := services.NewReportService(repo, c, opts.Bucketer, logger,
		services.WithThreshold(opts.KThreshold),
		services.WithCacheTTL(opts.CacheTTL),
	)

	return &App{
		Repo:          repo,
		Cache:         c,
		Organizations: services.NewOrganizationService(repo, c, logger),
		AccessKeys:    services.NewAccessKeyService(repo, logger),
		Surveys:       services.NewSurveyService(repo, c, logger),
		Responses:     services.NewResponseService(repo, opts.Hasher, c, logger),
		Reports:       reports,
		Exports:       services.NewExportService(repo, reports, export.NewBuilder(opts.Bucketer)),
		Stats:         services.NewStatsService(repo),
		Validator:     validator.New(),
		Logger:        logger,
	}
}
