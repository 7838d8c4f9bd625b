package models

import "time"

type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "DRAFT"
	SurveyStatusOpen   SurveyStatus = "OPEN"
	SurveyStatusClosed SurveyStatus = "CLOSED"
)

type Survey struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organizationId"`
	Title          string       `json:"title"`
	AssessmentType string       `json:"assessmentType"`
	Status         SurveyStatus `json:"status"`
	OpenAt         *time.Time   `json:"openAt,omitempty"`
	CloseAt        *time.Time   `json:"closeAt,omitempty"`
	AllowAnonymous bool         `json:"allowAnonymous"`
	// EligibleCount is the invited population used for the whole-organization
	// participation rate. Zero means unknown.
	EligibleCount int       `json:"eligibleCount"`
	ResponseCount int       `json:"responseCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateSurveyRequest struct {
	OrganizationID string     `json:"organizationId" validate:"required"`
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	OpenAt         *time.Time `json:"openAt"`
	CloseAt        *time.Time `json:"closeAt"`
	AllowAnonymous bool       `json:"allowAnonymous"`
	EligibleCount  int        `json:"eligibleCount" validate:"gte=0"`
}

type UpdateSurveyRequest struct {
	Title          string       `json:"title" validate:"required,min=1,max=200"`
	Status         SurveyStatus `json:"status" validate:"omitempty,surveystatus"`
	OpenAt         *time.Time   `json:"openAt"`
	CloseAt        *time.Time   `json:"closeAt"`
	AllowAnonymous bool         `json:"allowAnonymous"`
	EligibleCount  int          `json:"eligibleCount" validate:"gte=0"`
}
