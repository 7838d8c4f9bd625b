package services

import (
	"errors"
	"ocai-hub/models"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccessKeyService_Create(t *testing.T) {
	org := &models.Organization{ID: "org-1", Name: "Acme"}

	tests := []struct {
		name          string
		req           models.CreateAccessKeyRequest
		mockSetup     func(*MockRepository)
		expectedError error
		checkKey      func(*testing.T, *models.AccessKey)
	}{
		{
			name: "Success - generated key",
			req:  models.CreateAccessKeyRequest{OrganizationID: "org-1"},
			mockSetup: func(repo *MockRepository) {
				repo.On("GetOrganization", "org-1").Return(org, nil)
				repo.On("GetAccessKeyByKey", mock.AnythingOfType("string")).Return(nil, nil)
				repo.On("CreateAccessKey", mock.AnythingOfType("*models.AccessKey")).Return(nil)
			},
			checkKey: func(t *testing.T, key *models.AccessKey) {
				assert.Regexp(t, regexp.MustCompile(`^OCAI-[0-9A-F]{8}$`), key.Key)
				assert.Equal(t, "OCAI,BALDRIGE", key.AssessmentTypes)
				assert.True(t, key.IsActive)
				assert.Equal(t, 0, key.UsageCount)
			},
		},
		{
			name: "Success - supplied key",
			req:  models.CreateAccessKeyRequest{OrganizationID: "org-1", Key: "PILOT-2025", AssessmentTypes: "ocai"},
			mockSetup: func(repo *MockRepository) {
				repo.On("GetOrganization", "org-1").Return(org, nil)
				repo.On("GetAccessKeyByKey", "PILOT-2025").Return(nil, nil)
				repo.On("CreateAccessKey", mock.AnythingOfType("*models.AccessKey")).Return(nil)
			},
			checkKey: func(t *testing.T, key *models.AccessKey) {
				assert.Equal(t, "PILOT-2025", key.Key)
				assert.Equal(t, "OCAI", key.AssessmentTypes)
			},
		},
		{
			name: "Error - duplicate key",
			req:  models.CreateAccessKeyRequest{OrganizationID: "org-1", Key: "PILOT-2025"},
			mockSetup: func(repo *MockRepository) {
				repo.On("GetOrganization", "org-1").Return(org, nil)
				repo.On("GetAccessKeyByKey", "PILOT-2025").Return(&models.AccessKey{ID: "existing"}, nil)
			},
			expectedError: ErrAccessKeyExists,
		},
		{
			name: "Error - unknown organization",
			req:  models.CreateAccessKeyRequest{OrganizationID: "nope"},
			mockSetup: func(repo *MockRepository) {
				repo.On("GetOrganization", "nope").Return(nil, nil)
			},
			expectedError: ErrOrganizationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.mockSetup(repo)
			svc := NewAccessKeyService(repo, discardLogger())

			key, err := svc.Create(tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, key)
			} else {
				require.NoError(t, err)
				tt.checkKey(t, key)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAccessKeyService_UpdateAndDelete(t *testing.T) {
	t.Run("Update keeps key value", func(t *testing.T) {
		repo := new(MockRepository)
		maxUses := 3
		existing := &models.AccessKey{ID: "k1", Key: "OCAI-AAAAAAAA", AssessmentTypes: "OCAI", MaxUses: &maxUses, IsActive: true}
		repo.On("GetAccessKey", "k1").Return(existing, nil)
		repo.On("UpdateAccessKey", existing).Return(nil)

		inactive := false
		key, err := NewAccessKeyService(repo, discardLogger()).Update("k1", models.UpdateAccessKeyRequest{
			Description: "closed pilot",
			IsActive:    &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "OCAI-AAAAAAAA", key.Key)
		assert.Equal(t, "OCAI", key.AssessmentTypes)
		assert.Nil(t, key.MaxUses)
		assert.False(t, key.IsActive)
		assert.Equal(t, "closed pilot", key.Description)
	})

	t.Run("Delete unknown key", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAccessKey", "missing").Return(nil, nil)

		err := NewAccessKeyService(repo, discardLogger()).Delete("missing")
		assert.ErrorIs(t, err, ErrAccessKeyNotFound)
		repo.AssertNotCalled(t, "DeleteAccessKey", mock.Anything)
	})

	t.Run("Delete propagates repository errors", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAccessKey", "k1").Return(&models.AccessKey{ID: "k1"}, nil)
		repo.On("DeleteAccessKey", "k1").Return(errors.New("locked"))

		err := NewAccessKeyService(repo, discardLogger()).Delete("k1")
		assert.EqualError(t, err, "locked")
	})
}

func TestGenerateAccessKey_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := GenerateAccessKey()
		assert.False(t, seen[key])
		seen[key] = true
	}
}
