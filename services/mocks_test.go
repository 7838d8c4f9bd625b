package services

import (
	"io"
	"log/slog"
	"ocai-hub/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of every repository interface
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements the repository interfaces
var (
	_ OrganizationRepository = (*MockRepository)(nil)
	_ AccessKeyRepository    = (*MockRepository)(nil)
	_ SurveyRepository       = (*MockRepository)(nil)
	_ ResponseRepository     = (*MockRepository)(nil)
	_ ReportRepository       = (*MockRepository)(nil)
	_ StatsRepository        = (*MockRepository)(nil)
)

func (m *MockRepository) ListOrganizations() ([]models.OrganizationSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrganizationSummary), args.Error(1)
}

func (m *MockRepository) GetOrganization(id string) (*models.Organization, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockRepository) CreateOrganization(org *models.Organization) error {
	return m.Called(org).Error(0)
}

func (m *MockRepository) UpdateOrganization(org *models.Organization) error {
	return m.Called(org).Error(0)
}

func (m *MockRepository) DeleteOrganization(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockRepository) ListAccessKeys(organizationID string) ([]models.AccessKey, error) {
	args := m.Called(organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AccessKey), args.Error(1)
}

func (m *MockRepository) GetAccessKey(id string) (*models.AccessKey, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccessKey), args.Error(1)
}

func (m *MockRepository) GetAccessKeyByKey(key string) (*models.AccessKey, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccessKey), args.Error(1)
}

func (m *MockRepository) CreateAccessKey(key *models.AccessKey) error {
	return m.Called(key).Error(0)
}

func (m *MockRepository) UpdateAccessKey(key *models.AccessKey) error {
	return m.Called(key).Error(0)
}

func (m *MockRepository) DeleteAccessKey(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockRepository) ListSurveys(organizationID string) ([]models.Survey, error) {
	args := m.Called(organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Survey), args.Error(1)
}

func (m *MockRepository) GetSurvey(id string) (*models.Survey, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Survey), args.Error(1)
}

func (m *MockRepository) CreateSurvey(survey *models.Survey) error {
	return m.Called(survey).Error(0)
}

func (m *MockRepository) UpdateSurvey(survey *models.Survey) error {
	return m.Called(survey).Error(0)
}

func (m *MockRepository) DeleteSurvey(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockRepository) CreateResponse(resp *models.Response) error {
	return m.Called(resp).Error(0)
}

func (m *MockRepository) ListResponsesBySurvey(surveyID string) ([]models.Response, error) {
	args := m.Called(surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Response), args.Error(1)
}

func (m *MockRepository) ListResponsesByOrganization(organizationID string) ([]models.Response, error) {
	args := m.Called(organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Response), args.Error(1)
}

func (m *MockRepository) GetResponse(id string) (*models.Response, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Response), args.Error(1)
}

func (m *MockRepository) DeleteResponse(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockRepository) CountOrganizations(activeOnly bool) (int, error) {
	args := m.Called(activeOnly)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountAccessKeys(activeOnly bool) (int, error) {
	args := m.Called(activeOnly)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountSurveys(status models.SurveyStatus) (int, error) {
	args := m.Called(status)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountAllResponses() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockHasher is a mock implementation of IPHasher
type MockHasher struct {
	mock.Mock
}

var _ IPHasher = (*MockHasher)(nil)

func (m *MockHasher) Hash(ip string) (string, error) {
	args := m.Called(ip)
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
