package services

import (
	"context"
	"fmt"
	"log/slog"
	"ocai-hub/cache"
	"ocai-hub/models"
	"ocai-hub/ocai"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResponseService handles survey submissions
type ResponseService struct {
	repo   ResponseRepository
	hasher IPHasher
	cache  cache.Cacher
	logger *slog.Logger
	now    func() time.Time
}

// NewResponseService creates a new response service
func NewResponseService(repo ResponseRepository, hasher IPHasher, c cache.Cacher, logger *slog.Logger) *ResponseService {
	return &ResponseService{
		repo:   repo,
		hasher: hasher,
		cache:  c,
		logger: logger,
		now:    time.Now,
	}
}

// Submit records a response to an OPEN survey. Dimension answers, when present, are
// averaged into the stored score sets. The client address is stored only as a hash.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, req models.SubmitResponseRequest, clientIP string) (*models.Response, error) {
	survey, err := s.repo.GetSurvey(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.Status != models.SurveyStatusOpen {
		return nil, ErrSurveyNotOpen
	}

	nowScores, preferredScores := req.NowScores, req.PreferredScores
	if len(req.Answers) > 0 {
		nowScores, preferredScores = ocai.ScoreDimensions(req.Answers)
	}
	if nowScores == (ocai.ScoreSet{}) || preferredScores == (ocai.ScoreSet{}) {
		return nil, ErrMissingScores
	}

	consentVersion := DefaultConsentVersion
	org, err := s.repo.GetOrganization(survey.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org != nil && org.ConsentVersion != "" {
		consentVersion = org.ConsentVersion
	}

	ipHash, err := s.hasher.Hash(clientIP)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	resp := &models.Response{
		ID:              uuid.New().String(),
		SurveyID:        survey.ID,
		UserID:          strings.TrimSpace(req.UserID),
		Demographics:    cleanDemographics(req.Demographics),
		NowScores:       nowScores,
		PreferredScores: preferredScores,
		IPHash:          ipHash,
		ConsentGiven:    req.ConsentGiven,
		ConsentVersion:  consentVersion,
		SubmittedAt:     now,
	}
	if req.ConsentGiven {
		resp.ConsentTimestamp = &now
	}

	if err := s.repo.CreateResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	invalidateSurvey(ctx, s.cache, s.logger, survey)
	s.logger.Info("response submitted", "survey_id", survey.ID, "response_id", resp.ID)
	return resp, nil
}

// ListBySurvey returns a survey's responses in submission order
func (s *ResponseService) ListBySurvey(surveyID string) ([]models.Response, error) {
	survey, err := s.repo.GetSurvey(surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return s.repo.ListResponsesBySurvey(surveyID)
}

// Delete removes a single response and drops the aggregates it contributed to
func (s *ResponseService) Delete(ctx context.Context, id string) error {
	resp, err := s.repo.GetResponse(id)
	if err != nil {
		return err
	}
	if resp == nil {
		return ErrResponseNotFound
	}

	if err := s.repo.DeleteResponse(id); err != nil {
		return fmt.Errorf("failed to delete response: %w", err)
	}

	survey := &models.Survey{ID: resp.SurveyID}
	if full, err := s.repo.GetSurvey(resp.SurveyID); err == nil && full != nil {
		survey = full
	}
	invalidateSurvey(ctx, s.cache, s.logger, survey)
	return nil
}

// cleanDemographics trims keys and values and drops empty keys
func cleanDemographics(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}
