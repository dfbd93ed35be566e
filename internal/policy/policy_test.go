package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resourcehub/internal/model"
)

var (
	admin    = &model.User{ID: 1, Role: model.RoleAdmin}
	provider = &model.User{ID: 2, Role: model.RoleProvider}
	user     = &model.User{ID: 3, Role: model.RoleUser}
)

func TestCanAccessUserRecord(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.User
		targetID uint
		expected bool
	}{
		{name: "nil actor", actor: nil, targetID: 3},
		{name: "own record", actor: user, targetID: 3, expected: true},
		{name: "other record", actor: user, targetID: 2},
		{name: "admin any record", actor: admin, targetID: 3, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAccessUserRecord(tt.actor, tt.targetID))
		})
	}
}

func TestCanModerateResources(t *testing.T) {
	assert.True(t, CanModerateResources(admin))
	assert.False(t, CanModerateResources(provider))
	assert.False(t, CanModerateResources(user))
	assert.False(t, CanModerateResources(nil))
}

func TestCanManageResource(t *testing.T) {
	owned := &model.Resource{ID: 10, ProviderID: provider.ID}

	tests := []struct {
		name     string
		actor    *model.User
		resource *model.Resource
		expected bool
	}{
		{name: "nil actor", actor: nil, resource: owned},
		{name: "nil resource", actor: admin, resource: nil},
		{name: "owning provider", actor: provider, resource: owned, expected: true},
		{name: "other provider", actor: &model.User{ID: 9, Role: model.RoleProvider}, resource: owned},
		{name: "plain user", actor: user, resource: owned},
		{name: "admin", actor: admin, resource: owned, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanManageResource(tt.actor, tt.resource))
		})
	}
}

func TestCanCreateResource(t *testing.T) {
	assert.True(t, CanCreateResource(admin))
	assert.True(t, CanCreateResource(provider))
	assert.False(t, CanCreateResource(user))
	assert.False(t, CanCreateResource(nil))
}

func TestCanChangeRoleOrStatus(t *testing.T) {
	assert.True(t, CanChangeRoleOrStatus(admin))
	assert.False(t, CanChangeRoleOrStatus(provider))
	assert.False(t, CanChangeRoleOrStatus(user))
	assert.False(t, CanChangeRoleOrStatus(nil))
}

func TestCanViewResource(t *testing.T) {
	approved := &model.Resource{ID: 10, ProviderID: provider.ID, Status: model.ResourceStatusApproved}
	pending := &model.Resource{ID: 11, ProviderID: provider.ID, Status: model.ResourceStatusPending}
	rejected := &model.Resource{ID: 12, ProviderID: provider.ID, Status: model.ResourceStatusRejected}

	tests := []struct {
		name     string
		actor    *model.User
		resource *model.Resource
		expected bool
	}{
		{name: "anonymous sees approved", actor: nil, resource: approved, expected: true},
		{name: "anonymous cannot see pending", actor: nil, resource: pending},
		{name: "owner sees own pending", actor: provider, resource: pending, expected: true},
		{name: "owner sees own rejected", actor: provider, resource: rejected, expected: true},
		{name: "admin sees any state", actor: admin, resource: rejected, expected: true},
		{name: "plain user cannot see pending", actor: user, resource: pending},
		{name: "nil resource", actor: admin, resource: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanViewResource(tt.actor, tt.resource))
		})
	}
}
