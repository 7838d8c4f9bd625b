package models

import "time"

type AccessKey struct {
	ID              string     `json:"id"`
	Key             string     `json:"key"`
	OrganizationID  string     `json:"organizationId"`
	AssessmentTypes string     `json:"assessmentTypes"`
	MaxUses         *int       `json:"maxUses,omitempty"`
	UsageCount      int        `json:"usageCount"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	Description     string     `json:"description,omitempty"`
	CreatedBy       string     `json:"createdBy,omitempty"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Usable reports whether the key is active, unexpired and under its usage cap at now
func (k *AccessKey) Usable(now time.Time) bool {
	if !k.IsActive {
		return false
	}
	if k.ExpiresAt != nil && !now.Before(*k.ExpiresAt) {
		return false
	}
	if k.MaxUses != nil && k.UsageCount >= *k.MaxUses {
		return false
	}
	return true
}

type CreateAccessKeyRequest struct {
	Key             string     `json:"key" validate:"omitempty,min=4,max=64,accesskey"`
	OrganizationID  string     `json:"organizationId" validate:"required"`
	AssessmentTypes string     `json:"assessmentTypes" validate:"omitempty,assessmenttypes"`
	MaxUses         *int       `json:"maxUses" validate:"omitempty,gte=1"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	Description     string     `json:"description" validate:"max=500"`
	CreatedBy       string     `json:"createdBy" validate:"max=200"`
}

type UpdateAccessKeyRequest struct {
	AssessmentTypes string     `json:"assessmentTypes" validate:"omitempty,assessmenttypes"`
	MaxUses         *int       `json:"maxUses" validate:"omitempty,gte=1"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	Description     string     `json:"description" validate:"max=500"`
	IsActive        *bool      `json:"isActive"`
}
