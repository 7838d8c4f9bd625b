package services

import "ocai-hub/models"

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	ListOrganizations() ([]models.OrganizationSummary, error)
	GetOrganization(id string) (*models.Organization, error)
	CreateOrganization(org *models.Organization) error
	UpdateOrganization(org *models.Organization) error
	DeleteOrganization(id string) error
}

// AccessKeyRepository defines the interface for access key data access
type AccessKeyRepository interface {
	GetOrganization(id string) (*models.Organization, error)
	ListAccessKeys(organizationID string) ([]models.AccessKey, error)
	GetAccessKey(id string) (*models.AccessKey, error)
	GetAccessKeyByKey(key string) (*models.AccessKey, error)
	CreateAccessKey(key *models.AccessKey) error
	UpdateAccessKey(key *models.AccessKey) error
	DeleteAccessKey(id string) error
}

// SurveyRepository defines the interface for survey data access
type SurveyRepository interface {
	GetOrganization(id string) (*models.Organization, error)
	ListSurveys(organizationID string) ([]models.Survey, error)
	GetSurvey(id string) (*models.Survey, error)
	CreateSurvey(survey *models.Survey) error
	UpdateSurvey(survey *models.Survey) error
	DeleteSurvey(id string) error
}

// ResponseRepository defines the interface for response data access
type ResponseRepository interface {
	GetOrganization(id string) (*models.Organization, error)
	GetSurvey(id string) (*models.Survey, error)
	CreateResponse(resp *models.Response) error
	ListResponsesBySurvey(surveyID string) ([]models.Response, error)
	GetResponse(id string) (*models.Response, error)
	DeleteResponse(id string) error
}

// ReportRepository defines the reads behind aggregates and exports
type ReportRepository interface {
	GetOrganization(id string) (*models.Organization, error)
	GetSurvey(id string) (*models.Survey, error)
	ListResponsesBySurvey(surveyID string) ([]models.Response, error)
	ListResponsesByOrganization(organizationID string) ([]models.Response, error)
}

// IPHasher one-way hashes respondent addresses
type IPHasher interface {
	Hash(ip string) (string, error)
}

// StatsRepository counts rows for the admin dashboard
type StatsRepository interface {
	CountOrganizations(activeOnly bool) (int, error)
	CountAccessKeys(activeOnly bool) (int, error)
	CountSurveys(status models.SurveyStatus) (int, error)
	CountAllResponses() (int, error)
}
