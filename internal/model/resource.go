package model

import (
	"strings"
	"time"

	apperrors "resourcehub/internal/errors"
)

// ResourceCategory classifies a resource offering.
type ResourceCategory string

// Resource categories supported by the directory.
const (
	CategoryFood           ResourceCategory = "food"
	CategoryHousing        ResourceCategory = "housing"
	CategoryHealthcare     ResourceCategory = "healthcare"
	CategoryEmployment     ResourceCategory = "employment"
	CategoryEducation      ResourceCategory = "education"
	CategoryTransportation ResourceCategory = "transportation"
	CategoryFinancial      ResourceCategory = "financial"
	CategoryLegal          ResourceCategory = "legal"
	CategoryOther          ResourceCategory = "other"
)

// Valid reports whether the category is one of the known categories.
func (c ResourceCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryHousing, CategoryHealthcare, CategoryEmployment,
		CategoryEducation, CategoryTransportation, CategoryFinancial,
		CategoryLegal, CategoryOther:
		return true
	}
	return false
}

// ResourceStatus is a resource's moderation status.
type ResourceStatus string

// Moderation statuses. New resources always start as pending.
const (
	ResourceStatusPending  ResourceStatus = "pending"
	ResourceStatusApproved ResourceStatus = "approved"
	ResourceStatusRejected ResourceStatus = "rejected"
	ResourceStatusExpired  ResourceStatus = "expired"
	ResourceStatusArchived ResourceStatus = "archived"
)

// Resource is a published offering from a provider, subject to moderation.
type Resource struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"size:255;not null"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Category    ResourceCategory `json:"category" gorm:"size:50;not null;index"`
	Status      ResourceStatus   `json:"status" gorm:"size:20;not null;default:'pending';index"`
	ProviderID  uint             `json:"provider_id" gorm:"not null;index"`

	// Geographic availability
	Location string `json:"location" gorm:"size:255;not null"`
	Address  string `json:"address" gorm:"size:255"`
	City     string `json:"city" gorm:"size:100"`
	State    string `json:"state" gorm:"size:100"`
	ZipCode  string `json:"zip_code" gorm:"size:20"`

	// Contact information
	ContactName  string `json:"contact_name" gorm:"size:100"`
	ContactPhone string `json:"contact_phone" gorm:"size:20"`
	ContactEmail string `json:"contact_email" gorm:"size:255"`

	// Availability window
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Requirements   StringList `json:"requirements" gorm:"type:text"`
	AdditionalInfo string     `json:"additional_info" gorm:"type:text"`

	// Moderation metadata. Approval and rejection fields are mutually
	// exclusive: setting one side clears the other.
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedByID    *uint      `json:"approved_by_id,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectedByID    *uint      `json:"rejected_by_id,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateDates checks that the availability window is well formed.
func (r *Resource) ValidateDates() error {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// Approve transitions a pending or previously rejected resource to approved,
// recording the moderating admin and clearing any rejection metadata.
func (r *Resource) Approve(adminID uint, now time.Time) error {
	if r.Status != ResourceStatusPending && r.Status != ResourceStatusRejected {
		return apperrors.ErrInvalidTransition
	}
	r.Status = ResourceStatusApproved
	r.ApprovedAt = &now
	r.ApprovedByID = &adminID
	r.RejectedAt = nil
	r.RejectedByID = nil
	r.RejectionReason = nil
	return nil
}

// Reject transitions a pending or approved resource to rejected. A non-empty
// reason is mandatory; on failure the resource is left unchanged.
func (r *Resource) Reject(adminID uint, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrMissingRejectionReason
	}
	if r.Status != ResourceStatusPending && r.Status != ResourceStatusApproved {
		return apperrors.ErrInvalidTransition
	}
	r.Status = ResourceStatusRejected
	r.RejectedAt = &now
	r.RejectedByID = &adminID
	r.RejectionReason = &reason
	r.ApprovedAt = nil
	r.ApprovedByID = nil
	return nil
}

// Archive moves the resource to the archived housekeeping state. Allowed
// from any state; no further automatic transitions apply.
func (r *Resource) Archive() {
	r.Status = ResourceStatusArchived
}

// ReopenReview downgrades an approved resource back to pending, clearing the
// approval metadata. Called when a non-admin provider edits an approved
// resource, forcing re-review.
func (r *Resource) ReopenReview() {
	r.Status = ResourceStatusPending
	r.ApprovedAt = nil
	r.ApprovedByID = nil
}

// IsAvailable reports whether the resource is approved and now falls within
// its availability window. Date comparisons are at day granularity.
func (r *Resource) IsAvailable(now time.Time) bool {
	if r.Status != ResourceStatusApproved {
		return false
	}
	today := dateOnly(now)
	if r.StartDate != nil && dateOnly(*r.StartDate).After(today) {
		return false
	}
	if r.EndDate != nil && dateOnly(*r.EndDate).Before(today) {
		return false
	}
	return true
}

// ExpiredBy reports whether an approved resource's end date has passed and
// the status should flip to expired. The flip itself is persisted by the
// caller in an explicit read-modify-write; this method does not mutate.
func (r *Resource) ExpiredBy(now time.Time) bool {
	return r.Status == ResourceStatusApproved &&
		r.EndDate != nil &&
		dateOnly(*r.EndDate).Before(dateOnly(now))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
