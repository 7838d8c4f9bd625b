package services

import (
	"context"
	"log/slog"
	"ocai-hub/aggregation"
	"ocai-hub/bucketing"
	"ocai-hub/cache"
	"ocai-hub/models"
	"time"

	"golang.org/x/sync/singleflight"
)

// ReportService computes survey and organization aggregates on demand. Results are
// read through the cache and never written to the database.
type ReportService struct {
	repo      ReportRepository
	cache     cache.Cacher
	sf        singleflight.Group
	bucketer  *bucketing.Bucketer
	threshold int
	ttl       time.Duration
	logger    *slog.Logger
}

type ReportOption func(*ReportService)

// WithThreshold sets the minimum size of a reported demographic slice
func WithThreshold(k int) ReportOption {
	return func(s *ReportService) {
		if k > 0 {
			s.threshold = k
		}
	}
}

func WithCacheTTL(ttl time.Duration) ReportOption {
	return func(s *ReportService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewReportService creates a new report service
func NewReportService(repo ReportRepository, c cache.Cacher, bucketer *bucketing.Bucketer, logger *slog.Logger, opts ...ReportOption) *ReportService {
	s := &ReportService{
		repo:      repo,
		cache:     c,
		bucketer:  bucketer,
		threshold: aggregation.DefaultKAnonymityThreshold,
		ttl:       cache.DefaultTTL,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Threshold is the k-anonymity threshold applied to demographic slices
func (s *ReportService) Threshold() int {
	return s.threshold
}

// Aggregates returns the whole-organization slice followed by every reportable
// demographic slice of a survey
func (s *ReportService) Aggregates(ctx context.Context, surveyID string) ([]models.AggregateData, error) {
	survey, err := s.repo.GetSurvey(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	return cache.FindAndCache(ctx, s.cache, &s.sf, cache.AggregatesKey(survey.ID), s.ttl, s.logger,
		func(ctx context.Context) ([]models.AggregateData, error) {
			responses, err := s.repo.ListResponsesBySurvey(survey.ID)
			if err != nil {
				return nil, err
			}
			aggs := aggregation.Build(survey.ID, responses, survey.EligibleCount, s.bucketer, s.threshold)
			s.logger.Debug("aggregates computed", "survey_id", survey.ID, "responses", len(responses), "slices", len(aggs))
			return aggs, nil
		})
}

// Recompute discards cached aggregates for the survey and computes them again
func (s *ReportService) Recompute(ctx context.Context, surveyID string) ([]models.AggregateData, error) {
	if err := s.cache.Delete(ctx, cache.AggregatesKey(surveyID)); err != nil {
		s.logger.Warn("failed to drop cached aggregates", "survey_id", surveyID, "error", err)
	}
	return s.Aggregates(ctx, surveyID)
}

// Slice returns one aggregate by slice key
func (s *ReportService) Slice(ctx context.Context, surveyID, sliceKey string) (*models.AggregateData, error) {
	aggs, err := s.Aggregates(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	for i := range aggs {
		if aggs[i].SliceKey == sliceKey {
			return &aggs[i], nil
		}
	}
	return nil, ErrSliceNotFound
}

// Leadership compares the leadership labor-unit slice with the whole organization
func (s *ReportService) Leadership(ctx context.Context, surveyID string) (models.LeadershipComparison, error) {
	aggs, err := s.Aggregates(ctx, surveyID)
	if err != nil {
		return models.LeadershipComparison{}, err
	}
	return aggregation.LeadershipComparison(aggs), nil
}

// OrganizationResults aggregates every response across an organization's surveys
func (s *ReportService) OrganizationResults(ctx context.Context, organizationID string) (*models.OrganizationResults, error) {
	org, err := s.repo.GetOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	return cache.FindAndCache(ctx, s.cache, &s.sf, cache.OrganizationResultsKey(org.ID), s.ttl, s.logger,
		func(ctx context.Context) (*models.OrganizationResults, error) {
			responses, err := s.repo.ListResponsesByOrganization(org.ID)
			if err != nil {
				return nil, err
			}

			results := &models.OrganizationResults{
				OrganizationID:   org.ID,
				OrganizationName: org.Name,
				TotalResponses:   len(responses),
			}
			if len(responses) > 0 {
				agg := aggregation.Aggregate(responses, 0)
				agg.SliceKey = models.WholeOrgSliceKey
				agg.SliceLabel = "Whole Organization"
				results.Aggregate = &agg
			}
			return results, nil
		})
}
