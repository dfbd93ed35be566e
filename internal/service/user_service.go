package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "resourcehub/internal/errors"
	"resourcehub/internal/model"
	"resourcehub/internal/policy"
	"resourcehub/internal/repository"
)

// UserUpdate carries the optional user fields an update may change. Role
// and status are admin-exclusive.
type UserUpdate struct {
	Name   *string
	Email  *string
	Role   *model.Role
	Status *model.Status
}

// UserService exposes user management operations. Every method takes the
// acting user explicitly and checks the access policy before touching state.
type UserService interface {
	Get(ctx context.Context, actor *model.User, id uint) (*model.User, error)
	List(ctx context.Context, actor *model.User, filter repository.UserFilter) ([]model.User, error)
	Update(ctx context.Context, actor *model.User, id uint, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, actor *model.User, id uint) (*model.User, error) {
	if !policy.CanAccessUserRecord(actor, id) {
		return nil, apperrors.ErrForbidden
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, actor *model.User, filter repository.UserFilter) ([]model.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.List(ctx, filter)
}

func (s *userService) Update(ctx context.Context, actor *model.User, id uint, upd UserUpdate) (*model.User, error) {
	if !policy.CanAccessUserRecord(actor, id) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	// Role and status are admin-exclusive, even on the actor's own record.
	if (upd.Role != nil && *upd.Role != user.Role) ||
		(upd.Status != nil && *upd.Status != user.Status) {
		if !policy.CanChangeRoleOrStatus(actor) {
			return nil, apperrors.ErrForbidden
		}
	}

	if upd.Email != nil && *upd.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *upd.Email)
		if err == nil && existing != nil {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *upd.Email
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Role != nil && policy.CanChangeRoleOrStatus(actor) {
		user.Role = *upd.Role
	}
	if upd.Status != nil && policy.CanChangeRoleOrStatus(actor) {
		user.Status = *upd.Status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and, through the cascade, their profile and
// resources. Deleting the only remaining admin is refused to avoid a total
// lockout.
func (s *userService) Delete(ctx context.Context, actor *model.User, id uint) error {
	if actor == nil || !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if user.IsAdmin() {
		count, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
		if err != nil {
			return err
		}
		if count <= 1 {
			return apperrors.ErrLastAdmin
		}
	}

	return s.userRepo.Delete(ctx, user)
}
