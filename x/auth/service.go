package auth

import (
	"go.opentelemetry.io/otel"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
)

var tracer = otel.Tracer("auth")

type service struct {
	actor      core.ActorService
	permission core.PermissionService
	workorder  core.WorkOrderService
	config     util.Config
}

// NewService creates a new auth service. Authentication itself is owned by
// the gateway; this service only resolves the propagated identity into an
// actor and guards routes with the permission engine.
func NewService(actor core.ActorService, permission core.PermissionService, workorder core.WorkOrderService, config util.Config) core.AuthService {
	return &service{actor, permission, workorder, config}
}
