package repository

import (
	"context"

	"gorm.io/gorm"

	"resourcehub/internal/model"
)

// ResourceFilter narrows resource listings. Zero values are ignored.
type ResourceFilter struct {
	Status     string
	Category   string
	Location   string
	Search     string
	ProviderID *uint
}

// ResourceRepository defines resource persistence operations.
type ResourceRepository interface {
	Create(ctx context.Context, resource *model.Resource) error
	Update(ctx context.Context, resource *model.Resource) error
	Delete(ctx context.Context, resource *model.Resource) error
	FindByID(ctx context.Context, id uint) (*model.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository builds a GORM-backed repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Delete(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error) {
	query := r.db.WithContext(ctx).Model(&model.Resource{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.ProviderID != nil {
		query = query.Where("provider_id = ?", *filter.ProviderID)
	}

	var resources []model.Resource
	if err := query.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
