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

const (
	DefaultAssessmentTypes = "OCAI,BALDRIGE"
	DefaultPrimaryColor    = "#3B82F6"
	DefaultConsentVersion  = "1.0"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo   OrganizationRepository
	cache  cache.Cacher
	logger *slog.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo OrganizationRepository, c cache.Cacher, logger *slog.Logger) *OrganizationService {
	return &OrganizationService{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// List returns all organizations with their related counts
func (s *OrganizationService) List() ([]models.OrganizationSummary, error) {
	return s.repo.ListOrganizations()
}

// Get returns ErrOrganizationNotFound for unknown ids
func (s *OrganizationService) Get(id string) (*models.Organization, error) {
	org, err := s.repo.GetOrganization(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

// Create stores a new active organization, filling branding and subscription defaults
func (s *OrganizationService) Create(req models.CreateOrganizationRequest) (*models.Organization, error) {
	now := time.Now().UTC()
	org := &models.Organization{
		ID:                    uuid.New().String(),
		Name:                  strings.TrimSpace(req.Name),
		Industry:              strings.TrimSpace(req.Industry),
		Size:                  strings.TrimSpace(req.Size),
		Country:               strings.TrimSpace(req.Country),
		SubscribedAssessments: normalizeAssessmentTypes(req.SubscribedAssessments),
		PrimaryColor:          defaultString(req.PrimaryColor, DefaultPrimaryColor),
		ConsentVersion:        DefaultConsentVersion,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.CreateOrganization(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.logger.Info("organization created", "organization_id", org.ID, "name", org.Name)
	return org, nil
}

// Update replaces the editable fields of an organization
func (s *OrganizationService) Update(id string, req models.UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	org.Name = strings.TrimSpace(req.Name)
	org.Industry = strings.TrimSpace(req.Industry)
	org.Size = strings.TrimSpace(req.Size)
	org.Country = strings.TrimSpace(req.Country)
	if req.SubscribedAssessments != "" {
		org.SubscribedAssessments = normalizeAssessmentTypes(req.SubscribedAssessments)
	}
	if req.PrimaryColor != "" {
		org.PrimaryColor = req.PrimaryColor
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateOrganization(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// Delete removes an organization together with its surveys, responses and keys
func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.repo.DeleteOrganization(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	if err := s.cache.Delete(ctx, cache.OrganizationResultsKey(id)); err != nil {
		s.logger.Warn("failed to invalidate organization results", "organization_id", id, "error", err)
	}
	s.logger.Info("organization deleted", "organization_id", id)
	return nil
}

// normalizeAssessmentTypes upper-cases and de-duplicates a comma list, defaulting to
// every assessment
func normalizeAssessmentTypes(value string) string {
	seen := make(map[string]bool)
	var types []string
	for _, t := range strings.Split(value, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	if len(types) == 0 {
		return DefaultAssessmentTypes
	}
	return strings.Join(types, ",")
}

func defaultString(value, fallback string) string {
	if value = strings.TrimSpace(value); value == "" {
		return fallback
	}
	return value
}
