// Package policy contains the pure authorization decision functions. Every
// mutating operation consults these with the actor passed explicitly; there
// is no ambient request context here and no side effects.
package policy

import "resourcehub/internal/model"

// CanAccessUserRecord reports whether actor may read or update the user
// record identified by targetUserID. Admins may access any record; everyone
// else only their own.
func CanAccessUserRecord(actor *model.User, targetUserID uint) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == targetUserID
}

// CanModerateResources reports whether actor may approve or reject
// resources and view the full moderation queue.
func CanModerateResources(actor *model.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanManageResource reports whether actor may edit, archive, or delete the
// given resource: admins always, providers only their own.
func CanManageResource(actor *model.User, resource *model.Resource) bool {
	if actor == nil || resource == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == resource.ProviderID
}

// CanCreateResource reports whether actor may publish resources.
func CanCreateResource(actor *model.User) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.IsProvider()
}

// CanChangeRoleOrStatus reports whether actor may change role or status
// fields on any user record, including their own. These fields are
// admin-exclusive.
func CanChangeRoleOrStatus(actor *model.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanViewResource reports whether actor may observe a resource in its
// current state. Non-approved resources are visible only to their owning
// provider and to admins; actor may be nil for unauthenticated callers.
func CanViewResource(actor *model.User, resource *model.Resource) bool {
	if resource == nil {
		return false
	}
	if resource.Status == model.ResourceStatusApproved {
		return true
	}
	return CanManageResource(actor, resource)
}
