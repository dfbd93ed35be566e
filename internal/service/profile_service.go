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

// ProfileUpdate carries the optional profile fields an update may change.
// The completion percentage is derived and never accepted from clients.
type ProfileUpdate struct {
	Phone   *string
	Bio     *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Needs   []string
}

// ProfileService exposes profile operations gated by the access policy.
type ProfileService interface {
	GetByUserID(ctx context.Context, actor *model.User, userID uint) (*model.Profile, error)
	Update(ctx context.Context, actor *model.User, userID uint, upd ProfileUpdate) (*model.Profile, error)
	List(ctx context.Context, actor *model.User, filter repository.ProfileFilter) ([]model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService builds a ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetByUserID(ctx context.Context, actor *model.User, userID uint) (*model.Profile, error) {
	if !policy.CanAccessUserRecord(actor, userID) {
		return nil, apperrors.ErrForbidden
	}
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update applies the given fields and recomputes the completion score in
// the same write.
func (s *profileService) Update(ctx context.Context, actor *model.User, userID uint, upd ProfileUpdate) (*model.Profile, error) {
	if !policy.CanAccessUserRecord(actor, userID) {
		return nil, apperrors.ErrForbidden
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		profile.Bio = *upd.Bio
	}
	if upd.Address != nil {
		profile.Address = *upd.Address
	}
	if upd.City != nil {
		profile.City = *upd.City
	}
	if upd.State != nil {
		profile.State = *upd.State
	}
	if upd.ZipCode != nil {
		profile.ZipCode = *upd.ZipCode
	}
	if upd.Needs != nil {
		profile.Needs = model.StringList(upd.Needs)
	}

	profile.RecomputeCompletion()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context, actor *model.User, filter repository.ProfileFilter) ([]model.Profile, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return s.profileRepo.List(ctx, filter)
}
