package models

import (
	"ocai-hub/ocai"
	"time"
)

// Response is one OCAI survey submission
type Response struct {
	ID               string            `json:"id"`
	SurveyID         string            `json:"surveyId"`
	UserID           string            `json:"userId,omitempty"`
	Demographics     map[string]string `json:"demographics"`
	NowScores        ocai.ScoreSet     `json:"nowScores"`
	PreferredScores  ocai.ScoreSet     `json:"preferredScores"`
	IPHash           string            `json:"-"`
	ConsentGiven     bool              `json:"consentGiven"`
	ConsentTimestamp *time.Time        `json:"consentTimestamp,omitempty"`
	ConsentVersion   string            `json:"consentVersion"`
	SubmittedAt      time.Time         `json:"submittedAt"`
}

// SubmitResponseRequest accepts either final score sets or the six raw dimension
// answers; answers win when both are present.
type SubmitResponseRequest struct {
	UserID          string                 `json:"userId"`
	Demographics    map[string]string      `json:"demographics" validate:"omitempty,dive,keys,max=50,endkeys,max=200"`
	NowScores       ocai.ScoreSet          `json:"nowScores"`
	PreferredScores ocai.ScoreSet          `json:"preferredScores"`
	Answers         []ocai.DimensionAnswer `json:"answers" validate:"omitempty,max=6,dive"`
	ConsentGiven    bool                   `json:"consentGiven"`
}
