package permission

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
)

var tracer = otel.Tracer("permission")

const (
	reasonEvaluationError = "Error evaluating permission"
	reasonRoleNotFound    = "Role not found"
	reasonDenied          = "Permission denied"
	reasonNotOwner        = "User does not own resource"
	reasonNotAssigned     = "User does not have assigned access"
)

type service struct {
	grants core.GrantService
	config util.Config
}

// NewService creates a new permission service
func NewService(grants core.GrantService, config util.Config) core.PermissionService {
	return &service{grants, config}
}

func granted(resource, action string, scope core.Scope) core.PermissionResult {
	return core.PermissionResult{
		Granted: true,
		Reason:  fmt.Sprintf("Permission granted for %s:%s:%s", resource, action, scope),
	}
}

func denied(reason string) core.PermissionResult {
	return core.PermissionResult{Granted: false, Reason: reason}
}

// Check resolves a permission check request to a grant/deny decision.
// Denial is a normal result, never an error. Any internal fault during
// evaluation is converted into a denial: the engine fails closed.
func (s *service) Check(ctx context.Context, request core.PermissionCheckRequest) (result core.PermissionResult) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Check")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("recovered from evaluation fault: %v", r))
			result = denied(reasonEvaluationError)
		}
	}()

	span.SetAttributes(
		attribute.String("role", request.Role),
		attribute.String("resource", request.Resource),
		attribute.String("action", request.Action),
		attribute.String("scope", string(request.Scope)),
	)

	if request.Role == "" || !s.grants.KnownRole(request.Role) {
		return denied(reasonRoleNotFound)
	}

	if request.Scope.IsBusinessScope() {
		return s.evaluateBusinessScope(ctx, request.Role, request.Resource, request.Action, request.Scope, request.Context)
	}

	possession := core.PossessionAny
	if request.Scope == core.ScopeMine {
		if request.Context == nil || request.Context.UserID == "" || request.Context.ResourceOwnerID != request.Context.UserID {
			return denied(reasonNotOwner)
		}
		possession = core.PossessionOwn
	}

	if s.grants.Granted(request.Role, request.Resource, request.Action, possession) {
		scope := request.Scope
		if scope == "" {
			scope = core.ScopeAny
		}
		return granted(request.Resource, request.Action, scope)
	}

	// the role may hold this action only under a business scope; try those
	// before denying
	for _, scope := range []core.Scope{core.ScopeAssigned, core.ScopeAvailable} {
		if result := s.evaluateBusinessScope(ctx, request.Role, request.Resource, request.Action, scope, request.Context); result.Granted {
			return result
		}
	}

	return denied(reasonDenied)
}

// evaluateBusinessScope decides assigned/available scopes. Eligibility
// comes from the role's declared permission strings, not the possession
// table. Assigned additionally requires the caller to place the user in
// the instance's assigned-users list; available is eligibility alone,
// since an available resource has no claimant by definition.
func (s *service) evaluateBusinessScope(ctx context.Context, role, resource, action string, scope core.Scope, pctx *core.PermissionContext) core.PermissionResult {
	ctx, span := tracer.Start(ctx, "Permission.Service.EvaluateBusinessScope")
	defer span.End()

	want := fmt.Sprintf("%s:%s", action, scope)
	if !slices.Contains(s.grants.Declared(role, resource), want) {
		return denied(reasonDenied)
	}

	if scope == core.ScopeAssigned {
		if pctx == nil || pctx.UserID == "" || !slices.Contains(pctx.AssignedUsers, pctx.UserID) {
			return denied(reasonNotAssigned)
		}
	}

	return granted(resource, action, scope)
}

// CheckUser is the primary entry point used by services. It derives the
// correct scope from the resource instance instead of requiring callers to
// compute it: mine when the instance's identifying field matches the
// actor, any otherwise.
func (s *service) CheckUser(ctx context.Context, actor core.Actor, resource, action string, resourceData map[string]any) core.PermissionResult {
	ctx, span := tracer.Start(ctx, "Permission.Service.CheckUser")
	defer span.End()

	owner := ownerField(resourceData)

	scope := core.ScopeAny
	if owner != "" && owner == actor.UserID {
		scope = core.ScopeMine
	}

	request := core.PermissionCheckRequest{
		Role:     actor.Role,
		Resource: resource,
		Action:   action,
		Scope:    scope,
		Context: &core.PermissionContext{
			UserID:          actor.UserID,
			ClientID:        actor.ClientID,
			ResourceOwnerID: owner,
			AssignedUsers:   assignedField(resourceData),
		},
	}

	result := s.Check(ctx, request)

	// mine and any are independent table facts, but an any grant covers
	// every instance, the owner's included
	if !result.Granted && scope == core.ScopeMine {
		request.Scope = core.ScopeAny
		result = s.Check(ctx, request)
	}

	// the actor holds a mine grant but is not the owner: report that
	// distinctly, callers rely on the reason text
	if !result.Granted && owner != "" && owner != actor.UserID &&
		s.grants.Granted(actor.Role, resource, action, core.PossessionOwn) {
		return denied(reasonNotOwner)
	}

	return result
}

// CanAccess is a boolean convenience wrapper over CheckUser. Actors that
// are not connected for their client are denied outright; that
// precondition is owned by the caller's session model and carried on the
// actor.
func (s *service) CanAccess(ctx context.Context, actor core.Actor, resource, action string, resourceData map[string]any) bool {
	ctx, span := tracer.Start(ctx, "Permission.Service.CanAccess")
	defer span.End()

	if !actor.Connected {
		return false
	}

	return s.CheckUser(ctx, actor, resource, action, resourceData).Granted
}

// Populate flattens the actor's full resolved grant set into
// resource:action:scope strings. Idempotent: the result is a deduplicated,
// sorted set, and nothing but the returned actor is mutated.
func (s *service) Populate(ctx context.Context, actor core.Actor) core.Actor {
	ctx, span := tracer.Start(ctx, "Permission.Service.Populate")
	defer span.End()

	var flat []string
	for resource, permissions := range s.grants.RolePermissions(actor.Role) {
		for _, permission := range permissions {
			flat = append(flat, fmt.Sprintf("%s:%s", resource, permission))
		}
	}

	actor.Permissions = util.Unique(flat)
	return actor
}

func ownerField(resourceData map[string]any) string {
	if resourceData == nil {
		return ""
	}
	if id, ok := resourceData["_id"].(string); ok && id != "" {
		return id
	}
	if createdBy, ok := resourceData["createdBy"].(string); ok && createdBy != "" {
		return createdBy
	}
	return ""
}

func assignedField(resourceData map[string]any) []string {
	if resourceData == nil {
		return nil
	}
	assigned, _ := resourceData["assignedUsers"].([]string)
	return assigned
}
