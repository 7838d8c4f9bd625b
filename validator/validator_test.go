package validator

import (
	"ocai-hub/models"
	"ocai-hub/ocai"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func even() ocai.ScoreSet {
	return ocai.ScoreSet{Clan: 25, Adhocracy: 25, Market: 25, Hierarchy: 25}
}

func TestValidator_CreateOrganization(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateOrganizationRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid organization",
			req:       models.CreateOrganizationRequest{Name: "Acme", PrimaryColor: "#3B82F6", SubscribedAssessments: "OCAI, baldrige"},
			wantError: false,
		},
		{
			name:      "Defaults left empty",
			req:       models.CreateOrganizationRequest{Name: "Acme"},
			wantError: false,
		},
		{
			name:      "Missing name",
			req:       models.CreateOrganizationRequest{},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "Bad color",
			req:       models.CreateOrganizationRequest{Name: "Acme", PrimaryColor: "blue"},
			wantError: true,
			errorMsg:  "primaryColor must be a hex color",
		},
		{
			name:      "Unknown assessment type",
			req:       models.CreateOrganizationRequest{Name: "Acme", SubscribedAssessments: "OCAI,DISC"},
			wantError: true,
			errorMsg:  "comma-separated list of: OCAI, BALDRIGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_AccessKeyAndSurvey(t *testing.T) {
	v := New()

	zero := 0
	tests := []struct {
		name      string
		req       interface{}
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Generated key",
			req:       &models.CreateAccessKeyRequest{OrganizationID: "org-1"},
			wantError: false,
		},
		{
			name:      "Custom key",
			req:       &models.CreateAccessKeyRequest{OrganizationID: "org-1", Key: "PILOT_2025-a"},
			wantError: false,
		},
		{
			name:      "Key with spaces",
			req:       &models.CreateAccessKeyRequest{OrganizationID: "org-1", Key: "pilot key"},
			wantError: true,
			errorMsg:  "key may only contain",
		},
		{
			name:      "Zero max uses",
			req:       &models.CreateAccessKeyRequest{OrganizationID: "org-1", MaxUses: &zero},
			wantError: true,
			errorMsg:  "maxUses must be greater than or equal to 1",
		},
		{
			name:      "Survey status",
			req:       &models.UpdateSurveyRequest{Title: "Q1", Status: "ARCHIVED"},
			wantError: true,
			errorMsg:  "status must be one of: DRAFT, OPEN, CLOSED",
		},
		{
			name:      "Survey without status",
			req:       &models.UpdateSurveyRequest{Title: "Q1"},
			wantError: false,
		},
		{
			name:      "Export type",
			req:       &models.ExportCSVRequest{SurveyID: "s1", ExportType: "pdf"},
			wantError: true,
			errorMsg:  "exportType must be one of: responses aggregates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SubmitResponse(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SubmitResponseRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid scores",
			req:       models.SubmitResponseRequest{NowScores: even(), PreferredScores: ocai.ScoreSet{Clan: 40, Adhocracy: 30, Market: 20, Hierarchy: 10}},
			wantError: false,
		},
		{
			name:      "Rounding tolerance",
			req:       models.SubmitResponseRequest{NowScores: ocai.ScoreSet{Clan: 33.33, Adhocracy: 33.33, Market: 33.34}, PreferredScores: even()},
			wantError: false,
		},
		{
			name:      "Scores not totaling 100",
			req:       models.SubmitResponseRequest{NowScores: ocai.ScoreSet{Clan: 50, Adhocracy: 30}, PreferredScores: even()},
			wantError: true,
			errorMsg:  `"nowScores" scores must total 100 (currently 80)`,
		},
		{
			name:      "Negative score",
			req:       models.SubmitResponseRequest{NowScores: even(), PreferredScores: ocai.ScoreSet{Clan: 110, Adhocracy: -10}},
			wantError: true,
			errorMsg:  `"preferredScores" Adhocracy score cannot be negative`,
		},
		{
			name: "Dimension answers",
			req: models.SubmitResponseRequest{Answers: []ocai.DimensionAnswer{{
				DimensionID: "leadership",
				Now:         ocai.Allocation{A: 40, B: 20, C: 20, D: 20},
				Preferred:   ocai.Allocation{A: 25, B: 25, C: 25, D: 25},
			}}},
			wantError: false,
		},
		{
			name: "Unknown dimension",
			req: models.SubmitResponseRequest{Answers: []ocai.DimensionAnswer{{
				DimensionID: "vision",
				Now:         ocai.Allocation{A: 100},
				Preferred:   ocai.Allocation{A: 100},
			}}},
			wantError: true,
			errorMsg:  "dimensionId is not a known OCAI dimension",
		},
		{
			name: "Empty dimension allocation",
			req: models.SubmitResponseRequest{Answers: []ocai.DimensionAnswer{{
				DimensionID: "leadership",
				Now:         ocai.Allocation{A: 100},
			}}},
			wantError: true,
			errorMsg:  `"preferred" scores must total 100`,
		},
		{
			name:      "Demographic value too long",
			req:       models.SubmitResponseRequest{NowScores: even(), PreferredScores: even(), Demographics: map[string]string{"team": string(make([]byte, 201))}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ErrorDetails(t *testing.T) {
	v := New()

	err := v.Validate(&models.SubmitResponseRequest{NowScores: ocai.ScoreSet{Clan: 10}, PreferredScores: even()})
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "nowScores", errs[0].Field)
	assert.Equal(t, "quadrantsum", errs[0].Tag)
	assert.Empty(t, errs[0].Value)
}
