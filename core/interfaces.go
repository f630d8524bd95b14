//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/labstack/echo/v4"
)

// GrantService exposes the immutable compiled grant table and the raw role
// declarations it was built from. Safe for concurrent use without locking.
type GrantService interface {
	Granted(role, resource, action string, possession Possession) bool
	Declared(role, resource string) []string
	KnownRole(role string) bool
	RolePermissions(role string) map[string][]string
	Resources() []string
	ResourceActions(resource string) []string
	Scopes() []string
	IsValidPermission(permission string) bool
}

type PermissionService interface {
	Check(ctx context.Context, request PermissionCheckRequest) PermissionResult
	CheckUser(ctx context.Context, actor Actor, resource, action string, resourceData map[string]any) PermissionResult
	CanAccess(ctx context.Context, actor Actor, resource, action string, resourceData map[string]any) bool
	Populate(ctx context.Context, actor Actor) Actor
}

type ActorService interface {
	Current(ctx context.Context, userID string) (Actor, error)
	InvalidateProjection(ctx context.Context, userID string) error
}

type WorkOrderService interface {
	Get(ctx context.Context, id string) (WorkOrder, error)
	ListAvailable(ctx context.Context, clientID string) ([]WorkOrder, error)
	Assign(ctx context.Context, workOrderID, userID string) error
	BuildContext(ctx context.Context, actor Actor, resource, resourceID string) (PermissionContext, map[string]any, error)
}

type AuthService interface {
	IdentifyActor(next echo.HandlerFunc) echo.HandlerFunc
	Restrict(resource, action string) echo.MiddlewareFunc
}
