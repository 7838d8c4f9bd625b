package services

import (
	"context"
	"errors"
	"ocai-hub/cache"
	"ocai-hub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizationService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           models.CreateOrganizationRequest
		mockSetup     func(*MockRepository)
		expectedName  string
		expectedTypes string
		expectedColor string
		expectedError bool
	}{
		{
			name: "Success - defaults applied",
			req:  models.CreateOrganizationRequest{Name: "  Acme Health  "},
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateOrganization", mock.AnythingOfType("*models.Organization")).Return(nil)
			},
			expectedName:  "Acme Health",
			expectedTypes: "OCAI,BALDRIGE",
			expectedColor: "#3B82F6",
		},
		{
			name: "Success - explicit values normalized",
			req:  models.CreateOrganizationRequest{Name: "Acme", SubscribedAssessments: "ocai, OCAI", PrimaryColor: "#112233"},
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateOrganization", mock.AnythingOfType("*models.Organization")).Return(nil)
			},
			expectedName:  "Acme",
			expectedTypes: "OCAI",
			expectedColor: "#112233",
		},
		{
			name: "Error - repository failure",
			req:  models.CreateOrganizationRequest{Name: "Acme"},
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateOrganization", mock.Anything).Return(errors.New("disk full"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.mockSetup(repo)
			svc := NewOrganizationService(repo, cache.NewMemory(), discardLogger())

			org, err := svc.Create(tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, org)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, org.ID)
				assert.Equal(t, tt.expectedName, org.Name)
				assert.Equal(t, tt.expectedTypes, org.SubscribedAssessments)
				assert.Equal(t, tt.expectedColor, org.PrimaryColor)
				assert.Equal(t, DefaultConsentVersion, org.ConsentVersion)
				assert.True(t, org.IsActive)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestOrganizationService_GetNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetOrganization", "missing").Return(nil, nil)
	svc := NewOrganizationService(repo, cache.NewMemory(), discardLogger())

	org, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
	assert.Nil(t, org)
}

func TestOrganizationService_Update(t *testing.T) {
	repo := new(MockRepository)
	existing := &models.Organization{ID: "org-1", Name: "Old", SubscribedAssessments: "OCAI", PrimaryColor: "#000000", IsActive: true}
	repo.On("GetOrganization", "org-1").Return(existing, nil)
	repo.On("UpdateOrganization", existing).Return(nil)
	svc := NewOrganizationService(repo, cache.NewMemory(), discardLogger())

	inactive := false
	org, err := svc.Update("org-1", models.UpdateOrganizationRequest{Name: "New", IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, "New", org.Name)
	assert.Equal(t, "OCAI", org.SubscribedAssessments)
	assert.Equal(t, "#000000", org.PrimaryColor)
	assert.False(t, org.IsActive)
	repo.AssertExpectations(t)
}

func TestOrganizationService_DeleteInvalidatesResults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetOrganization", "org-1").Return(&models.Organization{ID: "org-1"}, nil)
	repo.On("DeleteOrganization", "org-1").Return(nil)

	c := cache.NewMemory()
	require.NoError(t, c.Set(ctx, cache.OrganizationResultsKey("org-1"), "stale", time.Minute))

	svc := NewOrganizationService(repo, c, discardLogger())
	require.NoError(t, svc.Delete(ctx, "org-1"))

	var v string
	assert.ErrorIs(t, c.Get(ctx, cache.OrganizationResultsKey("org-1"), &v), cache.ErrMiss)
	repo.AssertExpectations(t)
}
