//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package workorder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stewardhq/steward/core"
)

const assignmentCacheTTL = 60 // seconds

// Repository is the interface for workorder repository
type Repository interface {
	GetWorkOrder(ctx context.Context, id string) (core.WorkOrder, error)
	GetPropertyOwner(ctx context.Context, id string) (string, error)
	GetAssignedUsers(ctx context.Context, workOrderID string) ([]string, error)
	ListUnclaimed(ctx context.Context, clientID string) ([]core.WorkOrder, error)
	CreateAssignment(ctx context.Context, assignment core.WorkOrderAssignment) error
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new workorder repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

// GetWorkOrder returns a work order by ID
func (r *repository) GetWorkOrder(ctx context.Context, id string) (core.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Repository.GetWorkOrder")
	defer span.End()

	var workOrder core.WorkOrder
	if err := r.db.WithContext(ctx).First(&workOrder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.WorkOrder{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.WorkOrder{}, errors.Wrap(err, "failed to load work order")
	}

	return workOrder, nil
}

// GetPropertyOwner returns the creator of a property
func (r *repository) GetPropertyOwner(ctx context.Context, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Repository.GetPropertyOwner")
	defer span.End()

	var property core.Property
	if err := r.db.WithContext(ctx).Select("created_by").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", core.NewErrorNotFound()
		}
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to load property")
	}

	return property.CreatedBy, nil
}

// GetAssignedUsers returns the ids of every user assigned to a work order.
// The list is cached briefly: it is read on every guarded request for the
// instance but only changes on assignment.
func (r *repository) GetAssignedUsers(ctx context.Context, workOrderID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Repository.GetAssignedUsers")
	defer span.End()

	key := assignmentKey(workOrderID)
	if item, err := r.mc.Get(key); err == nil {
		var users []string
		if err := json.Unmarshal(item.Value, &users); err == nil {
			return users, nil
		}
	}

	var users []string
	err := r.db.WithContext(ctx).
		Model(&core.WorkOrderAssignment{}).
		Where("work_order_id = ?", workOrderID).
		Pluck("user_id", &users).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to load assignments")
	}

	if body, err := json.Marshal(users); err == nil {
		r.mc.Set(&memcache.Item{Key: key, Value: body, Expiration: assignmentCacheTTL})
	}

	return users, nil
}

// ListUnclaimed returns the available-scope queue for a client
func (r *repository) ListUnclaimed(ctx context.Context, clientID string) ([]core.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "WorkOrder.Repository.ListUnclaimed")
	defer span.End()

	var workOrders []core.WorkOrder
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND claimed = false", clientID).
		Order("c_date desc").
		Find(&workOrders).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list unclaimed work orders")
	}

	return workOrders, nil
}

// CreateAssignment links a user to a work order and marks it claimed
func (r *repository) CreateAssignment(ctx context.Context, assignment core.WorkOrderAssignment) error {
	ctx, span := tracer.Start(ctx, "WorkOrder.Repository.CreateAssignment")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		return tx.Model(&core.WorkOrder{}).
			Where("id = ?", assignment.WorkOrderID).
			Update("claimed", true).Error
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to create assignment")
	}

	r.mc.Delete(assignmentKey(assignment.WorkOrderID))

	return nil
}

func assignmentKey(workOrderID string) string {
	return fmt.Sprintf("assignments:%s", workOrderID)
}
