package workorder

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/stewardhq/steward/core"
)

var tracer = otel.Tracer("workorder")

type service struct {
	repository Repository
}

// NewService creates a new workorder service
func NewService(repository Repository) core.WorkOrderService {
	return &service{repository}
}

// Get returns a work order by ID
func (s *service) Get(ctx context.Context, id string) (core.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Service.Get")
	defer span.End()

	return s.repository.GetWorkOrder(ctx, id)
}

// ListAvailable returns unclaimed work orders for a client
func (s *service) ListAvailable(ctx context.Context, clientID string) ([]core.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Service.ListAvailable")
	defer span.End()

	return s.repository.ListUnclaimed(ctx, clientID)
}

// Assign links a user to a work order
func (s *service) Assign(ctx context.Context, workOrderID, userID string) error {
	ctx, span := tracer.Start(ctx, "WorkOrder.Service.Assign")
	defer span.End()

	if _, err := s.repository.GetWorkOrder(ctx, workOrderID); err != nil {
		span.RecordError(err)
		return err
	}

	return s.repository.CreateAssignment(ctx, core.WorkOrderAssignment{
		WorkOrderID: workOrderID,
		UserID:      userID,
	})
}

// BuildContext assembles the context bag and resource data the permission
// engine needs for a concrete resource instance: the ownership field for
// mine-scope classification and the assigned-users list for assigned-scope
// checks. Resources the engine resolves without instance context come back
// with the bare actor facts.
func (s *service) BuildContext(ctx context.Context, actor core.Actor, resource, resourceID string) (core.PermissionContext, map[string]any, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Service.BuildContext")
	defer span.End()

	pctx := core.PermissionContext{
		UserID:   actor.UserID,
		ClientID: actor.ClientID,
	}

	if resourceID == "" {
		return pctx, nil, nil
	}

	switch resource {
	case "user":
		pctx.ResourceOwnerID = resourceID
		return pctx, map[string]any{"_id": resourceID}, nil

	case "property":
		owner, err := s.repository.GetPropertyOwner(ctx, resourceID)
		if err != nil {
			span.RecordError(err)
			return pctx, nil, err
		}
		pctx.ResourceOwnerID = owner
		return pctx, map[string]any{"createdBy": owner}, nil

	case "maintenance":
		workOrder, err := s.repository.GetWorkOrder(ctx, resourceID)
		if err != nil {
			span.RecordError(err)
			return pctx, nil, err
		}
		assigned, err := s.repository.GetAssignedUsers(ctx, resourceID)
		if err != nil {
			span.RecordError(err)
			return pctx, nil, err
		}
		pctx.ResourceOwnerID = workOrder.CreatedBy
		pctx.AssignedUsers = assigned
		return pctx, map[string]any{
			"createdBy":     workOrder.CreatedBy,
			"assignedUsers": assigned,
		}, nil
	}

	return pctx, nil, nil
}
