package repository

import (
	"context"

	"gorm.io/gorm"

	"resourcehub/internal/model"
)

// ProfileFilter narrows profile listings.
type ProfileFilter struct {
	// Complete filters on the derived is-complete flag when non-nil.
	Complete *bool
}

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	List(ctx context.Context, filter ProfileFilter) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) List(ctx context.Context, filter ProfileFilter) ([]model.Profile, error) {
	query := r.db.WithContext(ctx).Model(&model.Profile{})
	if filter.Complete != nil {
		query = query.Where("is_complete = ?", *filter.Complete)
	}

	var profiles []model.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
