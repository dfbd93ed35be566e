package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "resourcehub/internal/errors"
	"resourcehub/internal/model"
	"resourcehub/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestProfileService_GetByUserID(t *testing.T) {
	t.Run("user reads own profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, plainActor.ID).
			Return(&model.Profile{ID: 1, UserID: plainActor.ID}, nil)

		svc := NewProfileService(mockRepo)
		profile, err := svc.GetByUserID(context.Background(), plainActor, plainActor.ID)

		assert.NoError(t, err)
		assert.Equal(t, plainActor.ID, profile.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user cannot read another profile", func(t *testing.T) {
		svc := NewProfileService(new(MockProfileRepository))
		_, err := svc.GetByUserID(context.Background(), plainActor, providerActor.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("missing profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProfileService(mockRepo)
		_, err := svc.GetByUserID(context.Background(), adminActor, 99)
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})
}

func TestProfileService_Update(t *testing.T) {
	t.Run("update recomputes the completion score", func(t *testing.T) {
		profile := &model.Profile{ID: 1, UserID: plainActor.ID}

		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, plainActor.ID).Return(profile, nil)
		mockRepo.On("Update", mock.Anything, profile).Return(nil)

		svc := NewProfileService(mockRepo)
		got, err := svc.Update(context.Background(), plainActor, plainActor.ID, ProfileUpdate{
			Phone:   strPtr("555-0100"),
			Address: strPtr("1 Main St"),
			City:    strPtr("Springfield"),
			State:   strPtr("IL"),
			ZipCode: strPtr("62704"),
		})

		assert.NoError(t, err)
		assert.Equal(t, 70, got.CompletionPercentage)
		assert.False(t, got.IsComplete)
		mockRepo.AssertExpectations(t)
	})

	t.Run("optional fields push the score over the cutoff", func(t *testing.T) {
		profile := &model.Profile{
			ID:      1,
			UserID:  plainActor.ID,
			Phone:   "555-0100",
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
		}

		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, plainActor.ID).Return(profile, nil)
		mockRepo.On("Update", mock.Anything, profile).Return(nil)

		svc := NewProfileService(mockRepo)
		got, err := svc.Update(context.Background(), plainActor, plainActor.ID, ProfileUpdate{
			Needs: []string{"food", "housing"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 85, got.CompletionPercentage)
		assert.True(t, got.IsComplete)
		mockRepo.AssertExpectations(t)
	})

	t.Run("clearing a required field drops the score", func(t *testing.T) {
		profile := &model.Profile{
			ID:                   1,
			UserID:               plainActor.ID,
			Phone:                "555-0100",
			Address:              "1 Main St",
			City:                 "Springfield",
			State:                "IL",
			ZipCode:              "62704",
			Bio:                  "about me",
			Needs:                model.StringList{"food"},
			IsComplete:           true,
			CompletionPercentage: 100,
		}

		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, plainActor.ID).Return(profile, nil)
		mockRepo.On("Update", mock.Anything, profile).Return(nil)

		svc := NewProfileService(mockRepo)
		got, err := svc.Update(context.Background(), plainActor, plainActor.ID, ProfileUpdate{
			Phone: strPtr(""),
		})

		assert.NoError(t, err)
		assert.Equal(t, 86, got.CompletionPercentage)
		assert.True(t, got.IsComplete)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user cannot update another profile", func(t *testing.T) {
		svc := NewProfileService(new(MockProfileRepository))
		_, err := svc.Update(context.Background(), plainActor, providerActor.ID, ProfileUpdate{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestProfileService_List(t *testing.T) {
	t.Run("admin filters by completion", func(t *testing.T) {
		complete := true
		mockRepo := new(MockProfileRepository)
		mockRepo.On("List", mock.Anything, repository.ProfileFilter{Complete: &complete}).
			Return([]model.Profile{{ID: 1, IsComplete: true}}, nil)

		svc := NewProfileService(mockRepo)
		profiles, err := svc.List(context.Background(), adminActor, repository.ProfileFilter{Complete: &complete})

		assert.NoError(t, err)
		assert.Len(t, profiles, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		svc := NewProfileService(new(MockProfileRepository))
		_, err := svc.List(context.Background(), providerActor, repository.ProfileFilter{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
