package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stewardhq/steward/core"
	mock_core "github.com/stewardhq/steward/core/mock"
	"github.com/stewardhq/steward/util"
	"github.com/stewardhq/steward/x/grant"
)

var s core.PermissionService

func TestMain(m *testing.M) {

	spec := core.GrantSpecification{
		Scopes: map[string]core.ScopeSpec{
			"assigned":  {},
			"available": {},
		},
		Resources: map[string]core.ResourceSpec{
			"user":        {Actions: []string{"create", "read", "update", "delete"}},
			"property":    {Actions: []string{"create", "read", "update", "delete"}},
			"maintenance": {Actions: []string{"create", "read", "update", "delete", "claim"}},
		},
		Roles: map[string]core.RoleSpec{
			"admin": {
				Resources: map[string][]string{
					"user":        {"create", "read", "update", "delete"},
					"property":    {"create", "read", "update", "delete"},
					"maintenance": {"create", "read", "update", "delete"},
				},
			},
			"staff": {
				Resources: map[string][]string{
					"maintenance": {"read:any", "update:assigned", "claim:available"},
				},
			},
			"tenant": {
				Resources: map[string][]string{
					"property":    {"read:mine", "update:mine"},
					"maintenance": {"create", "read:mine"},
				},
			},
		},
	}

	table, err := grant.Compile(spec)
	if err != nil {
		panic(err)
	}

	s = NewService(grant.NewServiceFromTable(table), util.Config{})

	m.Run()
}

// 1. a role holding an any grant passes regardless of ownership
func TestCheckAnyScope(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "read",
		Scope:    core.ScopeAny,
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:read:any", result.Reason)
}

// 2. a mine grant passes only when the runtime context proves ownership
func TestCheckMineScope(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "property",
		Action:   "read",
		Scope:    core.ScopeMine,
		Context: &core.PermissionContext{
			UserID:          "user1",
			ResourceOwnerID: "user1",
		},
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for property:read:mine", result.Reason)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "property",
		Action:   "read",
		Scope:    core.ScopeMine,
		Context: &core.PermissionContext{
			UserID:          "user1",
			ResourceOwnerID: "user2",
		},
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "User does not own resource", result.Reason)
}

// 3. mine without any context at all is a denial, not a fault
func TestCheckMineScopeNoContext(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "property",
		Action:   "read",
		Scope:    core.ScopeMine,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "User does not own resource", result.Reason)
}

// 4. assigned requires membership in the instance's assigned users
func TestCheckAssignedScope(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "update",
		Scope:    core.ScopeAssigned,
		Context: &core.PermissionContext{
			UserID:        "staff1",
			AssignedUsers: []string{"staff1", "staff2"},
		},
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:update:assigned", result.Reason)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "update",
		Scope:    core.ScopeAssigned,
		Context: &core.PermissionContext{
			UserID:        "staff3",
			AssignedUsers: []string{"staff1", "staff2"},
		},
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "User does not have assigned access", result.Reason)
}

// 5. available is eligibility alone, an available resource has no claimant
func TestCheckAvailableScope(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "claim",
		Scope:    core.ScopeAvailable,
		Context: &core.PermissionContext{
			UserID: "staff1",
		},
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:claim:available", result.Reason)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "maintenance",
		Action:   "claim",
		Scope:    core.ScopeAvailable,
		Context: &core.PermissionContext{
			UserID: "user1",
		},
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Permission denied", result.Reason)
}

// 6. a request without an explicit scope falls through to the role's
// business-scope grants before denying
func TestCheckFallThroughToBusinessScope(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "update",
		Context: &core.PermissionContext{
			UserID:        "staff1",
			AssignedUsers: []string{"staff1"},
		},
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:update:assigned", result.Reason)
}

// 7. unknown and empty roles are denied with a distinct reason, never an error
func TestCheckRoleNotFound(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "ghost",
		Resource: "property",
		Action:   "read",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Role not found", result.Reason)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Resource: "property",
		Action:   "read",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Role not found", result.Reason)
}

// 8. anything the table does not grant is denied
func TestCheckDenyByDefault(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "property",
		Action:   "delete",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Permission denied", result.Reason)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "user",
		Action:   "read",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Permission denied", result.Reason)
}

// 8b. any and mine are independent table facts at the check level: a role
// holding only one of the two is denied the other
func TestCheckScopeIndependence(t *testing.T) {
	result := s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "admin",
		Resource: "user",
		Action:   "read",
		Scope:    core.ScopeMine,
		Context: &core.PermissionContext{
			UserID:          "admin1",
			ResourceOwnerID: "admin1",
		},
	})
	assert.False(t, result.Granted)

	result = s.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "tenant",
		Resource: "property",
		Action:   "update",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
}

// 9. a fault during evaluation is converted into a denial
func TestCheckFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	grants := mock_core.NewMockGrantService(ctrl)
	grants.EXPECT().KnownRole("staff").Return(true)
	grants.EXPECT().Granted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(role, resource, action string, possession core.Possession) bool {
			panic("table corrupted")
		},
	)

	faulty := NewService(grants, util.Config{})
	result := faulty.Check(context.Background(), core.PermissionCheckRequest{
		Role:     "staff",
		Resource: "maintenance",
		Action:   "read",
		Scope:    core.ScopeAny,
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Error evaluating permission", result.Reason)
}

// 10. CheckUser derives mine from the instance's identifying field
func TestCheckUserDerivesScope(t *testing.T) {
	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant", Connected: true}

	result := s.CheckUser(context.Background(), actor, "property", "read", map[string]any{
		"createdBy": "user1",
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for property:read:mine", result.Reason)

	result = s.CheckUser(context.Background(), actor, "user", "read", map[string]any{
		"_id": "user1",
	})
	assert.False(t, result.Granted)
}

// 11. holding only a mine grant on someone else's resource reports the
// ownership failure, not a generic denial
func TestCheckUserNotOwner(t *testing.T) {
	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant", Connected: true}

	result := s.CheckUser(context.Background(), actor, "property", "read", map[string]any{
		"createdBy": "user2",
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "User does not own resource", result.Reason)

	// no own grant for the action at all: plain denial
	result = s.CheckUser(context.Background(), actor, "property", "delete", map[string]any{
		"createdBy": "user2",
	})
	assert.False(t, result.Granted)
	assert.Equal(t, "Permission denied", result.Reason)
}

// 12. an any grant covers the actor's own resources too
func TestCheckUserAnyCoversOwn(t *testing.T) {
	actor := core.Actor{UserID: "staff1", ClientID: "client1", Role: "staff", Connected: true}

	result := s.CheckUser(context.Background(), actor, "maintenance", "read", map[string]any{
		"createdBy": "staff1",
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:read:any", result.Reason)
}

// 13. CheckUser feeds assigned users through to the business-scope evaluation
func TestCheckUserAssigned(t *testing.T) {
	actor := core.Actor{UserID: "staff1", ClientID: "client1", Role: "staff", Connected: true}

	result := s.CheckUser(context.Background(), actor, "maintenance", "update", map[string]any{
		"createdBy":     "user1",
		"assignedUsers": []string{"staff1"},
	})
	assert.True(t, result.Granted)
	assert.Equal(t, "Permission granted for maintenance:update:assigned", result.Reason)

	result = s.CheckUser(context.Background(), actor, "maintenance", "update", map[string]any{
		"createdBy":     "user1",
		"assignedUsers": []string{"staff2"},
	})
	assert.False(t, result.Granted)
}

// 14. disconnected actors are denied before any evaluation
func TestCanAccessDisconnected(t *testing.T) {
	actor := core.Actor{UserID: "staff1", ClientID: "client1", Role: "staff", Connected: false}
	assert.False(t, s.CanAccess(context.Background(), actor, "maintenance", "read", nil))

	actor.Connected = true
	assert.True(t, s.CanAccess(context.Background(), actor, "maintenance", "read", nil))
}

// 15. the projection is a sorted, deduplicated flattening and is stable
// across repeated calls
func TestPopulateIdempotent(t *testing.T) {
	actor := core.Actor{UserID: "user1", ClientID: "client1", Role: "tenant", Connected: true}

	first := s.Populate(context.Background(), actor)
	assert.Contains(t, first.Permissions, "property:read:mine")
	assert.Contains(t, first.Permissions, "maintenance:create:any")

	second := s.Populate(context.Background(), first)
	assert.Equal(t, first.Permissions, second.Permissions)

	for i := 1; i < len(first.Permissions); i++ {
		assert.Less(t, first.Permissions[i-1], first.Permissions[i])
	}
}

// 16. an unknown role projects to an empty set
func TestPopulateUnknownRole(t *testing.T) {
	actor := core.Actor{UserID: "x", Role: "ghost"}
	populated := s.Populate(context.Background(), actor)
	assert.Empty(t, populated.Permissions)
}
