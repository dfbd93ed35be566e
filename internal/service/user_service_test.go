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

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name          string
		actor         *model.User
		targetID      uint
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "user reads own record",
			actor:    plainActor,
			targetID: plainActor.ID,
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("FindByID", mock.Anything, plainActor.ID).Return(plainActor, nil)
			},
		},
		{
			name:     "admin reads any record",
			actor:    adminActor,
			targetID: plainActor.ID,
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("FindByID", mock.Anything, plainActor.ID).Return(plainActor, nil)
			},
		},
		{
			name:          "user cannot read another record",
			actor:         plainActor,
			targetID:      providerActor.ID,
			setupMock:     func(mRepo *MockUserRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:     "missing record",
			actor:    adminActor,
			targetID: 99,
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Get(context.Background(), tt.actor, tt.targetID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.targetID, user.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_List(t *testing.T) {
	t.Run("admin lists users", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything, repository.UserFilter{Role: "provider"}).
			Return([]model.User{*providerActor}, nil)

		svc := NewUserService(mockRepo)
		users, err := svc.List(context.Background(), adminActor, repository.UserFilter{Role: "provider"})

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		_, err := svc.List(context.Background(), plainActor, repository.UserFilter{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_Update(t *testing.T) {
	roleProvider := model.RoleProvider
	statusSuspended := model.StatusSuspended
	newName := "New Name"

	t.Run("user renames own record", func(t *testing.T) {
		target := &model.User{ID: 3, Role: model.RoleUser, Status: model.StatusActive, Name: "Old Name"}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, target).Return(nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Update(context.Background(), plainActor, 3, UserUpdate{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, newName, user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user cannot change own role", func(t *testing.T) {
		target := &model.User{ID: 3, Role: model.RoleUser, Status: model.StatusActive}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)

		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), plainActor, 3, UserUpdate{Role: &roleProvider})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("admin changes role and status", func(t *testing.T) {
		target := &model.User{ID: 3, Role: model.RoleUser, Status: model.StatusActive}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("Update", mock.Anything, target).Return(nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Update(context.Background(), adminActor, 3, UserUpdate{
			Role:   &roleProvider,
			Status: &statusSuspended,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleProvider, user.Role)
		assert.Equal(t, model.StatusSuspended, user.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("email change to taken address is refused", func(t *testing.T) {
		target := &model.User{ID: 3, Email: "old@x.com", Role: model.RoleUser, Status: model.StatusActive}
		taken := "taken@x.com"

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("FindByEmail", mock.Anything, taken).Return(&model.User{ID: 7, Email: taken}, nil)

		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), plainActor, 3, UserUpdate{Email: &taken})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("admin deletes a user", func(t *testing.T) {
		target := &model.User{ID: 3, Role: model.RoleUser, Status: model.StatusActive}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(target, nil)
		mockRepo.On("Delete", mock.Anything, target).Return(nil)

		svc := NewUserService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), adminActor, 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-admin cannot delete", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		err := svc.Delete(context.Background(), providerActor, 3)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("last admin is protected", func(t *testing.T) {
		target := &model.User{ID: 1, Role: model.RoleAdmin, Status: model.StatusActive}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(target, nil)
		mockRepo.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(1), nil)

		svc := NewUserService(mockRepo)
		err := svc.Delete(context.Background(), adminActor, 1)
		assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin deleted when another remains", func(t *testing.T) {
		target := &model.User{ID: 5, Role: model.RoleAdmin, Status: model.StatusActive}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(target, nil)
		mockRepo.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(2), nil)
		mockRepo.On("Delete", mock.Anything, target).Return(nil)

		svc := NewUserService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), adminActor, 5))
		mockRepo.AssertExpectations(t)
	})
}
