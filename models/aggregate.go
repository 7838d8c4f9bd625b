package models

import "ocai-hub/ocai"

const WholeOrgSliceKey = "whole_org"

// AggregateData summarizes one slice of responses. It is derived on demand and
// never stored.
type AggregateData struct {
	SurveyID          string        `json:"surveyId"`
	SliceKey          string        `json:"sliceKey"`
	SliceLabel        string        `json:"sliceLabel"`
	Current           ocai.ScoreSet `json:"current"`
	Preferred         ocai.ScoreSet `json:"preferred"`
	Delta             ocai.ScoreSet `json:"delta"`
	N                 int           `json:"n"`
	ParticipationRate float64       `json:"participationRate"`
	Congruence        ocai.ScoreSet `json:"congruenceIndicators"`
	Confidence        string        `json:"confidence"`
}

// LeadershipComparison pairs the leadership slice with the whole organization.
// Either side is nil when that slice is not reportable.
type LeadershipComparison struct {
	Leadership *AggregateData `json:"leadership"`
	Overall    *AggregateData `json:"overall"`
}

// OrganizationResults aggregates every OCAI response across an organization's surveys
type OrganizationResults struct {
	OrganizationID   string         `json:"organizationId"`
	OrganizationName string         `json:"organizationName"`
	TotalResponses   int            `json:"totalResponses"`
	Aggregate        *AggregateData `json:"organizationAggregate"`
}

type ExportCSVRequest struct {
	SurveyID   string `json:"surveyId" validate:"required"`
	ExportType string `json:"exportType" validate:"omitempty,oneof=responses aggregates"`
}

// AdminStats are platform-wide counts for the admin dashboard
type AdminStats struct {
	TotalOrganizations  int `json:"totalOrganizations"`
	ActiveOrganizations int `json:"activeOrganizations"`
	TotalAccessKeys     int `json:"totalAccessKeys"`
	ActiveAccessKeys    int `json:"activeAccessKeys"`
	TotalSurveys        int `json:"totalSurveys"`
	OpenSurveys         int `json:"openSurveys"`
	TotalResponses      int `json:"totalResponses"`
}
