package services

import (
	"fmt"
	"log/slog"
	"ocai-hub/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccessKeyPrefix starts every generated access key
const AccessKeyPrefix = "OCAI-"

// AccessKeyService handles business logic for organization access keys
type AccessKeyService struct {
	repo   AccessKeyRepository
	logger *slog.Logger
}

// NewAccessKeyService creates a new access key service
func NewAccessKeyService(repo AccessKeyRepository, logger *slog.Logger) *AccessKeyService {
	return &AccessKeyService{
		repo:   repo,
		logger: logger,
	}
}

// List returns keys for one organization, or every key when organizationID is empty
func (s *AccessKeyService) List(organizationID string) ([]models.AccessKey, error) {
	return s.repo.ListAccessKeys(organizationID)
}

// Create issues a key for an existing organization. A key is generated when the
// request leaves it empty.
func (s *AccessKeyService) Create(req models.CreateAccessKeyRequest) (*models.AccessKey, error) {
	org, err := s.repo.GetOrganization(req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	value := strings.TrimSpace(req.Key)
	if value == "" {
		value = GenerateAccessKey()
	}

	existing, err := s.repo.GetAccessKeyByKey(value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccessKeyExists
	}

	now := time.Now().UTC()
	key := &models.AccessKey{
		ID:              uuid.New().String(),
		Key:             value,
		OrganizationID:  org.ID,
		AssessmentTypes: normalizeAssessmentTypes(req.AssessmentTypes),
		MaxUses:         req.MaxUses,
		ExpiresAt:       req.ExpiresAt,
		Description:     strings.TrimSpace(req.Description),
		CreatedBy:       strings.TrimSpace(req.CreatedBy),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateAccessKey(key); err != nil {
		return nil, fmt.Errorf("failed to create access key: %w", err)
	}

	s.logger.Info("access key created", "access_key_id", key.ID, "organization_id", org.ID)
	return key, nil
}

// Update changes limits, description and activation of a key. The key value and its
// organization are fixed.
func (s *AccessKeyService) Update(id string, req models.UpdateAccessKeyRequest) (*models.AccessKey, error) {
	key, err := s.repo.GetAccessKey(id)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrAccessKeyNotFound
	}

	if req.AssessmentTypes != "" {
		key.AssessmentTypes = normalizeAssessmentTypes(req.AssessmentTypes)
	}
	key.MaxUses = req.MaxUses
	key.ExpiresAt = req.ExpiresAt
	key.Description = strings.TrimSpace(req.Description)
	if req.IsActive != nil {
		key.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateAccessKey(key); err != nil {
		return nil, fmt.Errorf("failed to update access key: %w", err)
	}
	return key, nil
}

func (s *AccessKeyService) Delete(id string) error {
	key, err := s.repo.GetAccessKey(id)
	if err != nil {
		return err
	}
	if key == nil {
		return ErrAccessKeyNotFound
	}
	return s.repo.DeleteAccessKey(id)
}

// GenerateAccessKey returns a random key of the form OCAI-XXXXXXXX
func GenerateAccessKey() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return AccessKeyPrefix + strings.ToUpper(raw[:8])
}
