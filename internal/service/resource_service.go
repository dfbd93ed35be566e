package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "resourcehub/internal/errors"
	"resourcehub/internal/model"
	"resourcehub/internal/policy"
	"resourcehub/internal/repository"
)

// ResourceInput is the full field set accepted when creating a resource.
// Status is deliberately absent: new resources always start pending.
type ResourceInput struct {
	Title          string
	Description    string
	Category       model.ResourceCategory
	Location       string
	Address        string
	City           string
	State          string
	ZipCode        string
	ContactName    string
	ContactPhone   string
	ContactEmail   string
	StartDate      *time.Time
	EndDate        *time.Time
	Requirements   []string
	AdditionalInfo string
}

// ResourceUpdate carries the optional fields an update may change.
type ResourceUpdate struct {
	Title          *string
	Description    *string
	Category       *model.ResourceCategory
	Location       *string
	Address        *string
	City           *string
	State          *string
	ZipCode        *string
	ContactName    *string
	ContactPhone   *string
	ContactEmail   *string
	StartDate      *time.Time
	EndDate        *time.Time
	Requirements   []string
	AdditionalInfo *string
}

// PublicResourceFilter narrows the public resource listing.
type PublicResourceFilter struct {
	Category string
	Location string
	Search   string
}

// ResourceService drives the resource lifecycle. Moderation transitions are
// implemented on the model; this layer checks policy and persists each
// transition as a single atomic write.
type ResourceService interface {
	Create(ctx context.Context, actor *model.User, input ResourceInput) (*model.Resource, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Resource, error)
	ListPublic(ctx context.Context, filter PublicResourceFilter) ([]model.Resource, error)
	ListAll(ctx context.Context, actor *model.User, filter repository.ResourceFilter) ([]model.Resource, error)
	ListMine(ctx context.Context, actor *model.User, filter repository.ResourceFilter) ([]model.Resource, error)
	Update(ctx context.Context, actor *model.User, id uint, upd ResourceUpdate) (*model.Resource, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
	Approve(ctx context.Context, actor *model.User, id uint) (*model.Resource, error)
	Reject(ctx context.Context, actor *model.User, id uint, reason string) (*model.Resource, error)
	Archive(ctx context.Context, actor *model.User, id uint) (*model.Resource, error)
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	now          func() time.Time
}

// NewResourceService builds a ResourceService.
func NewResourceService(resourceRepo repository.ResourceRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo, now: time.Now}
}

// Create publishes a new resource owned by the actor. Whatever status a
// client may have supplied upstream is ignored; moderation starts at pending.
func (s *resourceService) Create(ctx context.Context, actor *model.User, input ResourceInput) (*model.Resource, error) {
	if !policy.CanCreateResource(actor) {
		return nil, apperrors.ErrForbidden
	}

	resource := &model.Resource{
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Status:         model.ResourceStatusPending,
		ProviderID:     actor.ID,
		Location:       input.Location,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		ZipCode:        input.ZipCode,
		ContactName:    input.ContactName,
		ContactPhone:   input.ContactPhone,
		ContactEmail:   input.ContactEmail,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Requirements:   model.StringList(input.Requirements),
		AdditionalInfo: input.AdditionalInfo,
	}
	if err := resource.ValidateDates(); err != nil {
		return nil, err
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Get fetches a single resource, enforcing visibility: non-approved
// resources are only visible to their owner and admins. Evaluating a
// resource whose end date has passed flips it to expired in an explicit
// read-modify-write before returning.
func (s *resourceService) Get(ctx context.Context, actor *model.User, id uint) (*model.Resource, error) {
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return nil, err
	}

	if resource.ExpiredBy(s.now()) {
		resource.Status = model.ResourceStatusExpired
		if err := s.resourceRepo.Update(ctx, resource); err != nil {
			return nil, err
		}
	}

	if !policy.CanViewResource(actor, resource) {
		// Hide existence of unapproved resources from outsiders.
		return nil, apperrors.ErrResourceNotFound
	}
	return resource, nil
}

// ListPublic returns approved resources only, with optional category,
// location, and free-text filters.
func (s *resourceService) ListPublic(ctx context.Context, filter PublicResourceFilter) ([]model.Resource, error) {
	return s.resourceRepo.List(ctx, repository.ResourceFilter{
		Status:   string(model.ResourceStatusApproved),
		Category: filter.Category,
		Location: filter.Location,
		Search:   filter.Search,
	})
}

// ListAll returns resources in every state; admin only.
func (s *resourceService) ListAll(ctx context.Context, actor *model.User, filter repository.ResourceFilter) ([]model.Resource, error) {
	if !policy.CanModerateResources(actor) {
		return nil, apperrors.ErrForbidden
	}
	return s.resourceRepo.List(ctx, filter)
}

// ListMine returns the actor's own resources in every state.
func (s *resourceService) ListMine(ctx context.Context, actor *model.User, filter repository.ResourceFilter) ([]model.Resource, error) {
	if actor == nil {
		return nil, apperrors.ErrForbidden
	}
	filter.ProviderID = &actor.ID
	return s.resourceRepo.List(ctx, filter)
}

// Update applies the given fields. When a non-admin provider edits an
// approved resource it drops back to pending for re-review; admin edits do
// not trigger the downgrade.
func (s *resourceService) Update(ctx context.Context, actor *model.User, id uint, upd ResourceUpdate) (*model.Resource, error) {
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageResource(actor, resource) {
		return nil, apperrors.ErrForbidden
	}

	applyResourceUpdate(resource, upd)
	if err := resource.ValidateDates(); err != nil {
		return nil, err
	}

	if resource.Status == model.ResourceStatusApproved && !actor.IsAdmin() {
		resource.ReopenReview()
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) Delete(ctx context.Context, actor *model.User, id uint) error {
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanManageResource(actor, resource) {
		return apperrors.ErrForbidden
	}
	return s.resourceRepo.Delete(ctx, resource)
}

// Approve moves a pending or rejected resource to approved. All moderation
// fields update in the same write or not at all.
func (s *resourceService) Approve(ctx context.Context, actor *model.User, id uint) (*model.Resource, error) {
	if !policy.CanModerateResources(actor) {
		return nil, apperrors.ErrForbidden
	}
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := resource.Approve(actor.ID, s.now()); err != nil {
		return nil, err
	}
	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Reject moves a pending or approved resource to rejected. The reason is
// mandatory; on failure the stored resource is untouched.
func (s *resourceService) Reject(ctx context.Context, actor *model.User, id uint, reason string) (*model.Resource, error) {
	if !policy.CanModerateResources(actor) {
		return nil, apperrors.ErrForbidden
	}
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := resource.Reject(actor.ID, reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Archive moves a resource to the archived state; owner or admin.
func (s *resourceService) Archive(ctx context.Context, actor *model.User, id uint) (*model.Resource, error) {
	resource, err := s.findResource(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageResource(actor, resource) {
		return nil, apperrors.ErrForbidden
	}

	resource.Archive()
	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) findResource(ctx context.Context, id uint) (*model.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return resource, nil
}

func applyResourceUpdate(resource *model.Resource, upd ResourceUpdate) {
	if upd.Title != nil {
		resource.Title = *upd.Title
	}
	if upd.Description != nil {
		resource.Description = *upd.Description
	}
	if upd.Category != nil {
		resource.Category = *upd.Category
	}
	if upd.Location != nil {
		resource.Location = *upd.Location
	}
	if upd.Address != nil {
		resource.Address = *upd.Address
	}
	if upd.City != nil {
		resource.City = *upd.City
	}
	if upd.State != nil {
		resource.State = *upd.State
	}
	if upd.ZipCode != nil {
		resource.ZipCode = *upd.ZipCode
	}
	if upd.ContactName != nil {
		resource.ContactName = *upd.ContactName
	}
	if upd.ContactPhone != nil {
		resource.ContactPhone = *upd.ContactPhone
	}
	if upd.ContactEmail != nil {
		resource.ContactEmail = *upd.ContactEmail
	}
	if upd.StartDate != nil {
		resource.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		resource.EndDate = upd.EndDate
	}
	if upd.Requirements != nil {
		resource.Requirements = model.StringList(upd.Requirements)
	}
	if upd.AdditionalInfo != nil {
		resource.AdditionalInfo = *upd.AdditionalInfo
	}
}
