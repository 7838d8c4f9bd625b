package services

import (
	"context"
	"fmt"
	"log/slog"
	"ocai-hub/cache"
	"ocai-hub/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SurveyService handles business logic for surveys
type SurveyService struct {
	repo   SurveyRepository
	cache  cache.Cacher
	logger *slog.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(repo SurveyRepository, c cache.Cacher, logger *slog.Logger) *SurveyService {
	return &SurveyService{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// List returns surveys for one organization, or all surveys when organizationID is empty
func (s *SurveyService) List(organizationID string) ([]models.Survey, error) {
	return s.repo.ListSurveys(organizationID)
}

func (s *SurveyService) Get(id string) (*models.Survey, error) {
	survey, err := s.repo.GetSurvey(id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// Create adds a DRAFT OCAI survey to an existing organization
func (s *SurveyService) Create(req models.CreateSurveyRequest) (*models.Survey, error) {
	if err := checkSchedule(req.OpenAt, req.CloseAt); err != nil {
		return nil, err
	}

	org, err := s.repo.GetOrganization(req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	now := time.Now().UTC()
	survey := &models.Survey{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Title:          strings.TrimSpace(req.Title),
		AssessmentType: "OCAI",
		Status:         models.SurveyStatusDraft,
		OpenAt:         utcPtr(req.OpenAt),
		CloseAt:        utcPtr(req.CloseAt),
		AllowAnonymous: req.AllowAnonymous,
		EligibleCount:  req.EligibleCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.CreateSurvey(survey); err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}

	s.logger.Info("survey created", "survey_id", survey.ID, "organization_id", org.ID)
	return survey, nil
}

// Update edits a survey. Status may be set directly; the lifecycle worker also moves
// surveys between states on schedule.
func (s *SurveyService) Update(ctx context.Context, id string, req models.UpdateSurveyRequest) (*models.Survey, error) {
	if err := checkSchedule(req.OpenAt, req.CloseAt); err != nil {
		return nil, err
	}

	survey, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	survey.Title = strings.TrimSpace(req.Title)
	if req.Status != "" {
		survey.Status = req.Status
	}
	survey.OpenAt = utcPtr(req.OpenAt)
	survey.CloseAt = utcPtr(req.CloseAt)
	survey.AllowAnonymous = req.AllowAnonymous
	eligibleChanged := survey.EligibleCount != req.EligibleCount
	survey.EligibleCount = req.EligibleCount

	if err := s.repo.UpdateSurvey(survey); err != nil {
		return nil, fmt.Errorf("failed to update survey: %w", err)
	}

	// participation rates depend on the eligible population
	if eligibleChanged {
		invalidateSurvey(ctx, s.cache, s.logger, survey)
	}
	return survey, nil
}

// Delete removes a survey and its responses
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	survey, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSurvey(id); err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}

	invalidateSurvey(ctx, s.cache, s.logger, survey)
	s.logger.Info("survey deleted", "survey_id", id)
	return nil
}

func checkSchedule(openAt, closeAt *time.Time) error {
	if openAt != nil && closeAt != nil && !closeAt.After(*openAt) {
		return ErrInvalidSchedule
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

// invalidateSurvey drops every cached value derived from the survey's responses
func invalidateSurvey(ctx context.Context, c cache.Cacher, logger *slog.Logger, survey *models.Survey) {
	keys := []string{cache.AggregatesKey(survey.ID)}
	if survey.OrganizationID != "" {
		keys = append(keys, cache.OrganizationResultsKey(survey.OrganizationID))
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logger.Warn("failed to invalidate cached aggregates", "survey_id", survey.ID, "error", err)
	}
}
