package permission

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stewardhq/steward/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Check(c echo.Context) error
	RolePermissions(c echo.Context) error
	Resources(c echo.Context) error
	ResourceActions(c echo.Context) error
	Scopes(c echo.Context) error
	Validate(c echo.Context) error
}

type handler struct {
	service core.PermissionService
	grants  core.GrantService
}

// NewHandler creates a new handler
func NewHandler(service core.PermissionService, grants core.GrantService) Handler {
	return &handler{service: service, grants: grants}
}

// Check evaluates a single permission check request
func (h handler) Check(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Permission.Handler.Check")
	defer span.End()

	var request core.PermissionCheckRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	result := h.service.Check(ctx, request)
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": result})
}

// RolePermissions returns a role's resolved grants keyed by resource
func (h handler) RolePermissions(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Permission.Handler.RolePermissions")
	defer span.End()

	role := c.Param("role")
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": h.grants.RolePermissions(role)})
}

// Resources returns every declared resource
func (h handler) Resources(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Permission.Handler.Resources")
	defer span.End()

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": h.grants.Resources()})
}

// ResourceActions returns a resource's legal action vocabulary
func (h handler) ResourceActions(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Permission.Handler.ResourceActions")
	defer span.End()

	resource := c.Param("resource")
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": h.grants.ResourceActions(resource)})
}

// Scopes returns every declared scope
func (h handler) Scopes(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Permission.Handler.Scopes")
	defer span.End()

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": h.grants.Scopes()})
}

// Validate checks a permission string syntactically. Meant for
// configuration authoring tools, not for the runtime check path.
func (h handler) Validate(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Permission.Handler.Validate")
	defer span.End()

	permission := c.QueryParam("permission")
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{
		"permission": permission,
		"valid":      h.grants.IsValidPermission(permission),
	}})
}
