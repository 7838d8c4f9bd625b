package models

import "time"

type Organization struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Industry              string    `json:"industry,omitempty"`
	Size                  string    `json:"size,omitempty"`
	Country               string    `json:"country,omitempty"`
	SubscribedAssessments string    `json:"subscribedAssessments"`
	PrimaryColor          string    `json:"primaryColor"`
	ConsentVersion        string    `json:"consentVersion"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// OrganizationSummary is an organization with related-row counts for admin listings
type OrganizationSummary struct {
	Organization
	SurveyCount    int `json:"surveyCount"`
	AccessKeyCount int `json:"accessKeyCount"`
	ResponseCount  int `json:"responseCount"`
}

type CreateOrganizationRequest struct {
	Name                  string `json:"name" validate:"required,min=1,max=200"`
	Industry              string `json:"industry" validate:"max=100"`
	Size                  string `json:"size" validate:"max=50"`
	Country               string `json:"country" validate:"max=100"`
	SubscribedAssessments string `json:"subscribedAssessments" validate:"omitempty,assessmenttypes"`
	PrimaryColor          string `json:"primaryColor" validate:"omitempty,hexcolor"`
}

type UpdateOrganizationRequest struct {
	Name                  string `json:"name" validate:"required,min=1,max=200"`
	Industry              string `json:"industry" validate:"max=100"`
	Size                  string `json:"size" validate:"max=50"`
	Country               string `json:"country" validate:"max=100"`
	SubscribedAssessments string `json:"subscribedAssessments" validate:"omitempty,assessmenttypes"`
	PrimaryColor          string `json:"primaryColor" validate:"omitempty,hexcolor"`
	IsActive              *bool  `json:"isActive"`
}
